package routes

import (
	"net/http"

	"github.com/SUDD-dawg/Low-Risk/auth"
	"github.com/SUDD-dawg/Low-Risk/handlers"

	"go.uber.org/zap"
)

// requireAuth gates protected views: an anonymous request is sent to the
// login form with a "please log in" notice, an authenticated one proceeds
// with the session claims on the request context.
func requireAuth(secret []byte, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.SessionCookie)
		if err != nil {
			http.Redirect(w, r, "/login?notice=login_required", http.StatusSeeOther)
			return
		}

		claims, err := auth.ParseToken(cookie.Value, secret)
		if err != nil {
			auth.ClearSessionCookie(w)
			http.Redirect(w, r, "/login?notice=login_required", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), claims)))
	})
}

func SetupRoutes(
	mux *http.ServeMux,
	secret []byte,
	logger *zap.Logger,
	authHandler *handlers.AuthHandler,
	calcHandler *handlers.CalcHandler,
	feedbackHandler *handlers.FeedbackHandler,
	apiHandler *handlers.APIHandler,
	reportHandler *handlers.ReportHandler,
) {
	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return handlers.RecoverWrapper(logger, h)
	}
	protected := func(h http.HandlerFunc) http.Handler {
		return requireAuth(secret, wrap(h))
	}

	// Session routes
	mux.Handle("/login", wrap(authHandler.Login))
	mux.Handle("/register", wrap(authHandler.Register))
	mux.Handle("/logout", protected(authHandler.Logout))

	// Protected pages
	mux.Handle("/", protected(calcHandler.Home))
	mux.Handle("/home", protected(calcHandler.Home))
	mux.Handle("/eligibility", protected(calcHandler.Eligibility))
	mux.Handle("/risk", protected(calcHandler.Risk))
	mux.Handle("/feedback", protected(feedbackHandler.Feedback))
	mux.Handle("/dashboard", protected(feedbackHandler.Dashboard))
	mux.Handle("/dashboard/report", protected(reportHandler.DashboardReport))

	// JSON API
	mux.Handle("/api/eligibility", wrap(apiHandler.Eligibility))
	mux.Handle("/api/risk", wrap(apiHandler.Risk))
}

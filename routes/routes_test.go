package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SUDD-dawg/Low-Risk/auth"
	"github.com/SUDD-dawg/Low-Risk/classifier"
	"github.com/SUDD-dawg/Low-Risk/handlers"
	"github.com/SUDD-dawg/Low-Risk/models"
	"github.com/SUDD-dawg/Low-Risk/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

var testSecret = []byte("route-test-secret")

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	logger := zap.NewNop()

	tmpl, err := handlers.NewTemplates(logger)
	require.NoError(t, err)

	userRepo := repository.NewMemoryUserRepo()
	feedbackRepo := repository.NewMemoryFeedbackRepo()

	mux := http.NewServeMux()
	SetupRoutes(mux, testSecret, logger,
		&handlers.AuthHandler{Users: userRepo, Secret: testSecret, SessionTTL: time.Hour, Log: logger, Tmpl: tmpl},
		&handlers.CalcHandler{Log: logger, Tmpl: tmpl},
		&handlers.FeedbackHandler{Repo: feedbackRepo, Classifier: classifier.NewRuleClassifier(), Log: logger, Tmpl: tmpl},
		&handlers.APIHandler{Log: logger},
		&handlers.ReportHandler{Repo: feedbackRepo, Log: logger, Tmpl: tmpl},
	)
	return mux
}

func sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := auth.GenerateToken(&models.User{ID: 1, Username: "alice"}, testSecret, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: auth.SessionCookie, Value: token}
}

func TestProtectedViews_RedirectAnonymous(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	for _, path := range []string{"/", "/home", "/eligibility", "/risk", "/feedback", "/dashboard", "/logout"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code, "path %s", path)
		assert.Equal(t, "/login?notice=login_required", rec.Header().Get("Location"), "path %s", path)
	}
}

func TestProtectedViews_ServeAuthenticated(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	for _, path := range []string{"/", "/home", "/eligibility", "/risk", "/feedback", "/dashboard"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(sessionCookie(t))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
	}
}

func TestProtectedViews_RejectExpiredSession(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	token, err := auth.GenerateToken(&models.User{ID: 1, Username: "alice"}, testSecret, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?notice=login_required", rec.Header().Get("Location"))
}

func TestLoginPage_Anonymous(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	req := httptest.NewRequest(http.MethodGet, "/login?notice=login_required", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please log in to continue")
}

func TestAPIEndpoints_OpenWithoutSession(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	req := httptest.NewRequest(http.MethodGet, "/api/risk", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	// reachable without a session, GET is still rejected
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLogout_ClearsSession(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(sessionCookie(t))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout must clear the session cookie")
}

func TestUnknownPath_NotFound(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	req.AddCookie(sessionCookie(t))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardReport_UnconfiguredStorage(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	req := httptest.NewRequest(http.MethodGet, "/dashboard/report", nil)
	req.AddCookie(sessionCookie(t))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/SUDD-dawg/Low-Risk/auth"
	"github.com/SUDD-dawg/Low-Risk/models"
	"github.com/SUDD-dawg/Low-Risk/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	Users      repository.UserRepository
	Secret     []byte
	SessionTTL time.Duration
	Log        *zap.Logger
	Tmpl       *Templates
}

type authPage struct {
	Notice   string
	Error    string
	Username string
	Email    string
}

// Login serves the login form and checks credentials. Bad credentials
// render the same form with an inline message and the username retained.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.Tmpl.Render(w, "login.html", authPage{Notice: loginNotice(r)})
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := h.Users.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.Tmpl.Render(w, "login.html", authPage{Error: "Invalid username or password", Username: username})
			return
		}
		h.Log.Error("user lookup failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		h.Tmpl.Render(w, "login.html", authPage{Error: "Invalid username or password", Username: username})
		return
	}

	token, err := auth.GenerateToken(user, h.Secret, h.SessionTTL)
	if err != nil {
		h.Log.Error("token generation failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetSessionCookie(w, token, h.SessionTTL)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Register creates a new account. Duplicate username or email renders an
// inline message with the submitted form preserved.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.Tmpl.Render(w, "register.html", authPage{})
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	page := authPage{Username: username, Email: email}
	if username == "" || email == "" || password == "" {
		page.Error = "Username, email and password are required"
		h.Tmpl.Render(w, "register.html", page)
		return
	}

	user := &models.User{Username: username, Email: email}
	if err := h.Users.Create(r.Context(), user, password); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			page.Error = conflictMessage(err)
			h.Tmpl.Render(w, "register.html", page)
			return
		}
		h.Log.Error("user creation failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.Log.Info("user registered", zap.String("username", username))
	http.Redirect(w, r, "/login?notice=registered", http.StatusSeeOther)
}

// Logout ends the session and sends the user back to the login form.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func loginNotice(r *http.Request) string {
	switch r.URL.Query().Get("notice") {
	case "login_required":
		return "Please log in to continue"
	case "registered":
		return "Account created, please log in"
	}
	return ""
}

func conflictMessage(err error) string {
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return "Email already registered"
	}
	return "Username already taken"
}

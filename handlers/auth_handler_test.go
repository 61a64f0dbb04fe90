package handlers

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/SUDD-dawg/Low-Risk/auth"
	"github.com/SUDD-dawg/Low-Risk/models"
	"github.com/SUDD-dawg/Low-Risk/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *repository.MemoryUserRepo) {
	t.Helper()
	tmpl, err := NewTemplates(zap.NewNop())
	require.NoError(t, err)

	repo := repository.NewMemoryUserRepo()
	return &AuthHandler{
		Users:      repo,
		Secret:     []byte("test-secret"),
		SessionTTL: time.Hour,
		Log:        zap.NewNop(),
		Tmpl:       tmpl,
	}, repo
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	h, repo := newAuthHandler(t)
	rec := postForm(h.Register, "/register", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"s3cret"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?notice=registered", rec.Header().Get("Location"))

	user, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	h, repo := newAuthHandler(t)
	require.NoError(t, repo.Create(context.Background(),
		&models.User{Username: "alice", Email: "alice@example.com"}, "pw"))

	rec := postForm(h.Register, "/register", url.Values{
		"username": {"bob"},
		"email":    {"alice@example.com"},
		"password": {"pw2"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Email already registered")
	// the submitted form is preserved for correction
	assert.Contains(t, body, `value="bob"`)
	assert.Contains(t, body, `value="alice@example.com"`)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	h, repo := newAuthHandler(t)
	require.NoError(t, repo.Create(context.Background(),
		&models.User{Username: "alice", Email: "alice@example.com"}, "pw"))

	rec := postForm(h.Register, "/register", url.Values{
		"username": {"alice"},
		"email":    {"other@example.com"},
		"password": {"pw2"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username already taken")
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	h, repo := newAuthHandler(t)
	require.NoError(t, repo.Create(context.Background(),
		&models.User{Username: "alice", Email: "alice@example.com"}, "s3cret"))

	rec := postForm(h.Login, "/login", url.Values{
		"username": {"alice"},
		"password": {"s3cret"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookie {
			session = c
		}
	}
	require.NotNil(t, session, "login must set the session cookie")

	claims, err := auth.ParseToken(session.Value, h.Secret)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestLogin_BadPassword(t *testing.T) {
	t.Parallel()

	h, repo := newAuthHandler(t)
	require.NoError(t, repo.Create(context.Background(),
		&models.User{Username: "alice", Email: "alice@example.com"}, "s3cret"))

	rec := postForm(h.Login, "/login", url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Invalid username or password")
	assert.Contains(t, body, `value="alice"`)
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Parallel()

	h, _ := newAuthHandler(t)
	rec := postForm(h.Login, "/login", url.Values{
		"username": {"ghost"},
		"password": {"pw"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
}

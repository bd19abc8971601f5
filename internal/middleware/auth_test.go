package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaizen-center/backend/internal/application/auth"
	"github.com/kaizen-center/backend/internal/domain/users"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKeyAuth(t *testing.T) {
	h := APIKeyAuth("secret-key")(okHandler())

	t.Run("valid key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/vsm", nil)
		req.Header.Set("Authorization", "Bearer secret-key")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/vsm", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/vsm", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("health is open", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("login is open", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/auth/login", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty key disables gate", func(t *testing.T) {
		open := APIKeyAuth("")(okHandler())
		req := httptest.NewRequest("GET", "/api/vsm", nil)
		rec := httptest.NewRecorder()
		open.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

type staticUsers struct{ u *users.User }

func (s staticUsers) ByEmail(_ context.Context, email string) (*users.User, error) {
	if s.u != nil && s.u.Email == email {
		return s.u, nil
	}
	return nil, users.ErrNotFound
}

func TestSessionAuth(t *testing.T) {
	hash, err := auth.HashPassword("pw")
	require.NoError(t, err)
	svc := auth.NewService(staticUsers{u: &users.User{
		ID: "u1", Email: "a@b.c", PasswordHash: hash, Role: users.RoleUser,
	}}, []byte("s3cr3t"), time.Hour, nil)

	token, _, err := svc.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	var captured *auth.Session
	h := SessionAuth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = SessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("cookie", func(t *testing.T) {
		captured = nil
		req := httptest.NewRequest("GET", "/api/auth/session", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		h.ServeHTTP(httptest.NewRecorder(), req)
		require.NotNil(t, captured)
		assert.Equal(t, "u1", captured.UserID)
	})

	t.Run("bearer fallback", func(t *testing.T) {
		captured = nil
		req := httptest.NewRequest("GET", "/api/auth/session", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		h.ServeHTTP(httptest.NewRecorder(), req)
		require.NotNil(t, captured)
	})

	t.Run("anonymous passes through", func(t *testing.T) {
		captured = nil
		req := httptest.NewRequest("GET", "/api/auth/session", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, captured)
	})

	t.Run("bad token stays anonymous", func(t *testing.T) {
		captured = nil
		req := httptest.NewRequest("GET", "/api/auth/session", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "bogus"})
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Nil(t, captured)
	})
}

func TestRequireUser(t *testing.T) {
	h := RequireUser(okHandler())

	req := httptest.NewRequest("GET", "/api/ai-test/test-history", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/kaizen-center/backend/internal/application/auth"
)

type contextKey string

const sessionKey contextKey = "session"

// APIKeyAuth guards the whole API with a single shared key when one is
// configured. Empty key disables the check.
func APIKeyAuth(validKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if validKey == "" || r.URL.Path == "/health" || strings.HasPrefix(r.URL.Path, "/api/auth/") {
				next.ServeHTTP(w, r)
				return
			}

			got := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
			if got == "" {
				http.Error(w, "missing Authorization header", http.StatusUnauthorized)
				return
			}
			// constant-time comparison to prevent timing attacks
			if subtle.ConstantTimeCompare([]byte(got), []byte(validKey)) != 1 {
				http.Error(w, "invalid API key", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionAuth attaches the caller's session to the request context when a
// valid token is present. Requests without one stay anonymous; handlers
// that need identity use RequireUser.
func SessionAuth(svc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token != "" {
				if sess, err := svc.Parse(token); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), sessionKey, sess))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser rejects anonymous requests with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromContext(r.Context()) == nil {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SessionFromContext returns the caller's session, or nil when anonymous.
func SessionFromContext(ctx context.Context) *auth.Session {
	if sess, ok := ctx.Value(sessionKey).(*auth.Session); ok {
		return sess
	}
	return nil
}

// tokenFromRequest prefers the session cookie, falling back to a bearer
// token for non-browser clients.
func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie("access_token"); err == nil && c.Value != "" {
		return c.Value
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

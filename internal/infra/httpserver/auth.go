package httpserver

import (
	"net/http"

	"github.com/kaizen-center/backend/internal/application/auth"
	"github.com/kaizen-center/backend/internal/middleware"
)

const sessionCookie = "access_token"

// POST /api/auth/login
func (r *Router) handleLogin(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(req, &body); err != nil {
		return err
	}

	token, user, err := r.authSvc.Login(req.Context(), body.Email, body.Password)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(r.authSvc.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
	return nil
}

// POST /api/auth/logout
func (r *Router) handleLogout(w http.ResponseWriter, req *http.Request) error {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	return nil
}

// GET /api/auth/session
func (r *Router) handleSession(w http.ResponseWriter, req *http.Request) error {
	sess := middleware.SessionFromContext(req.Context())
	if sess == nil {
		return auth.ErrInvalidToken
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user": map[string]any{
			"id":    sess.UserID,
			"email": sess.Email,
			"role":  sess.Role,
		},
	})
	return nil
}

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kaizen-center/backend/internal/domain/reports"
	"github.com/kaizen-center/backend/internal/middleware"
)

// POST /api/a3-reports/generate
func (r *Router) handleA3Generate(w http.ResponseWriter, req *http.Request) error {
	var in reports.A3Input
	if err := decodeBody(req, &in); err != nil {
		return err
	}

	rec, err := r.reportsSvc.GenerateA3(req.Context(), in, sessionUserID(req))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]any{"report": rec})
	return nil
}

// POST /api/a3-reports/improve-input
func (r *Router) handleA3ImproveInput(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Text      string `json:"text"`
		FieldType string `json:"fieldType"`
	}
	if err := decodeBody(req, &body); err != nil {
		return err
	}

	improved, err := r.reportsSvc.ImproveA3Input(req.Context(), body.Text, body.FieldType)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]string{"improvedText": improved})
	return nil
}

// POST /api/a3-reports/validate-input
func (r *Router) handleA3ValidateInput(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Text      string `json:"text"`
		FieldType string `json:"fieldType"`
	}
	if err := decodeBody(req, &body); err != nil {
		return err
	}

	verdict, err := r.reportsSvc.ValidateA3Input(req.Context(), body.Text, body.FieldType)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, verdict)
	return nil
}

// GET /api/a3-reports
func (r *Router) handleA3List(w http.ResponseWriter, req *http.Request) error {
	recs, err := r.reportsSvc.ListA3(req.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]any{"reports": recs})
	return nil
}

// GET /api/a3-reports/{id}
func (r *Router) handleA3Get(w http.ResponseWriter, req *http.Request) error {
	rec, err := r.reportsSvc.GetA3(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]any{"report": rec})
	return nil
}

// DELETE /api/a3-reports/{id}
func (r *Router) handleA3Delete(w http.ResponseWriter, req *http.Request) error {
	if err := r.reportsSvc.Delete(req.Context(), reports.KindA3, chi.URLParam(req, "id")); err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	return nil
}

// sessionUserID returns the caller's user id, or "" when anonymous
func sessionUserID(req *http.Request) string {
	if sess := middleware.SessionFromContext(req.Context()); sess != nil {
		return sess.UserID
	}
	return ""
}

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kaizen-center/backend/internal/domain/reports"
)

// POST /api/vsm/generate
func (r *Router) handleVSMGenerate(w http.ResponseWriter, req *http.Request) error {
	var in reports.VSMInput
	if err := decodeBody(req, &in); err != nil {
		return err
	}

	rec, err := r.reportsSvc.GenerateVSM(req.Context(), in, sessionUserID(req))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]any{"map": rec})
	return nil
}

// POST /api/vsm/improve-text
func (r *Router) handleVSMImproveText(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Text    string `json:"text"`
		Context string `json:"context"`
	}
	if err := decodeBody(req, &body); err != nil {
		return err
	}

	improved, err := r.reportsSvc.ImproveVSMText(req.Context(), body.Text, body.Context)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]string{"improvedText": improved})
	return nil
}

// GET /api/vsm
func (r *Router) handleVSMList(w http.ResponseWriter, req *http.Request) error {
	recs, err := r.reportsSvc.ListVSM(req.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]any{"maps": recs})
	return nil
}

// GET /api/vsm/{id}
func (r *Router) handleVSMGet(w http.ResponseWriter, req *http.Request) error {
	rec, err := r.reportsSvc.GetVSM(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]any{"map": rec})
	return nil
}

// DELETE /api/vsm/{id}
func (r *Router) handleVSMDelete(w http.ResponseWriter, req *http.Request) error {
	if err := r.reportsSvc.Delete(req.Context(), reports.KindVSM, chi.URLParam(req, "id")); err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	return nil
}

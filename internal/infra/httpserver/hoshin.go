package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kaizen-center/backend/internal/domain/reports"
)

// POST /api/hoshin/generate
func (r *Router) handleHoshinGenerate(w http.ResponseWriter, req *http.Request) error {
	var in reports.HoshinInput
	if err := decodeBody(req, &in); err != nil {
		return err
	}

	rec, err := r.reportsSvc.GenerateHoshin(req.Context(), in, sessionUserID(req))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, rec)
	return nil
}

// POST /api/hoshin/improve-input
func (r *Router) handleHoshinImproveInput(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Text      string `json:"text"`
		FieldType string `json:"fieldType"`
	}
	if err := decodeBody(req, &body); err != nil {
		return err
	}

	improved, err := r.reportsSvc.ImproveHoshinField(req.Context(), body.Text, body.FieldType)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]string{"improvedText": improved})
	return nil
}

// POST /api/hoshin/validate
func (r *Router) handleHoshinValidate(w http.ResponseWriter, req *http.Request) error {
	var in reports.HoshinInput
	if err := decodeBody(req, &in); err != nil {
		return err
	}

	res, err := r.reportsSvc.ValidateHoshin(req.Context(), in)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, res)
	return nil
}

// GET /api/hoshin/list
func (r *Router) handleHoshinList(w http.ResponseWriter, req *http.Request) error {
	recs, err := r.reportsSvc.ListHoshin(req.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, recs)
	return nil
}

// GET /api/hoshin/{id}
func (r *Router) handleHoshinGet(w http.ResponseWriter, req *http.Request) error {
	rec, err := r.reportsSvc.GetHoshin(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, rec)
	return nil
}

// DELETE /api/hoshin/{id}
func (r *Router) handleHoshinDelete(w http.ResponseWriter, req *http.Request) error {
	if err := r.reportsSvc.Delete(req.Context(), reports.KindHoshin, chi.URLParam(req, "id")); err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	return nil
}

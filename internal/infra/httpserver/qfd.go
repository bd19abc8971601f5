package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kaizen-center/backend/internal/domain/reports"
)

// POST /api/qfd/generate-lists
func (r *Router) handleQFDGenerateLists(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		CompanyDescription string `json:"companyDescription"`
	}
	if err := decodeBody(req, &body); err != nil {
		return err
	}

	lists, err := r.reportsSvc.GenerateQFDLists(req.Context(), body.CompanyDescription)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, lists)
	return nil
}

// POST /api/qfd/generate-report
func (r *Router) handleQFDGenerateReport(w http.ResponseWriter, req *http.Request) error {
	var in reports.QFDReportInput
	if err := decodeBody(req, &in); err != nil {
		return err
	}

	rec, err := r.reportsSvc.GenerateQFDReport(req.Context(), in, sessionUserID(req))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, rec)
	return nil
}

// POST /api/qfd/search-company
func (r *Router) handleQFDSearchCompany(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		CompanyName string `json:"companyName"`
	}
	if err := decodeBody(req, &body); err != nil {
		return err
	}

	res, err := r.reportsSvc.SearchCompany(req.Context(), body.CompanyName)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, res)
	return nil
}

// POST /api/qfd/improve-description
func (r *Router) handleQFDImproveDescription(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Description string `json:"description"`
	}
	if err := decodeBody(req, &body); err != nil {
		return err
	}

	improved, err := r.reportsSvc.ImproveQFDDescription(req.Context(), body.Description)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]string{"improvedDescription": improved})
	return nil
}

// GET /api/qfd
func (r *Router) handleQFDList(w http.ResponseWriter, req *http.Request) error {
	recs, err := r.reportsSvc.ListQFD(req.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, recs)
	return nil
}

// GET /api/qfd/{id}
func (r *Router) handleQFDGet(w http.ResponseWriter, req *http.Request) error {
	rec, err := r.reportsSvc.GetQFD(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, rec)
	return nil
}

// DELETE /api/qfd/{id}
func (r *Router) handleQFDDelete(w http.ResponseWriter, req *http.Request) error {
	if err := r.reportsSvc.Delete(req.Context(), reports.KindQFD, chi.URLParam(req, "id")); err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	return nil
}

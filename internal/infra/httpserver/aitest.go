package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/kaizen-center/backend/internal/domain/reports"
	"github.com/kaizen-center/backend/internal/domain/users"
	"github.com/kaizen-center/backend/internal/middleware"
)

// POST /api/ai-test/extract-schema
func (r *Router) handleAITestExtractSchema(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Prompt string `json:"prompt"`
	}
	if err := decodeBody(req, &body); err != nil {
		return err
	}

	schema, err := r.aiTestSvc.ExtractSchema(req.Context(), body.Prompt)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, schema)
	return nil
}

// POST /api/ai-test/generate-report
func (r *Router) handleAITestGenerateReport(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Prompt       string         `json:"prompt"`
		UserInputs   map[string]any `json:"userInputs"`
		OutputSchema map[string]any `json:"outputSchema"`
	}
	if err := decodeBody(req, &body); err != nil {
		return err
	}

	result, err := r.aiTestSvc.GenerateReport(req.Context(), body.Prompt, body.UserInputs, body.OutputSchema)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, result)
	return nil
}

// GET /api/ai-test/test-templates
func (r *Router) handleAITestTemplates(w http.ResponseWriter, req *http.Request) error {
	writeJSON(w, http.StatusOK, r.aiTestSvc.Templates())
	return nil
}

// POST /api/ai-test/test-history
func (r *Router) handleAITestSaveHistory(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := decodeBody(req, &body); err != nil {
		return err
	}

	rec, err := r.aiTestSvc.SaveHistory(req.Context(), body.Type, body.Data, sessionUserID(req))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, rec)
	return nil
}

// GET /api/ai-test/test-history
func (r *Router) handleAITestListHistory(w http.ResponseWriter, req *http.Request) error {
	sess := middleware.SessionFromContext(req.Context())
	userID := ""
	includeAll := false
	if sess != nil {
		userID = sess.UserID
		includeAll = sess.Role == users.RoleAdmin
	}

	recs, err := r.aiTestSvc.ListHistory(req.Context(), userID, includeAll)
	if err != nil {
		return err
	}
	if recs == nil {
		// never null in the response
		recs = []*reports.HistoryRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
	return nil
}

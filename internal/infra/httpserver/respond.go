package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/kaizen-center/backend/internal/domain/reports"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, errorBody{Error: msg, Details: details})
}

// decodeBody parses the request JSON into dest. Malformed bodies are a
// client error.
func decodeBody(req *http.Request, dest any) error {
	if err := json.NewDecoder(req.Body).Decode(dest); err != nil {
		return &reports.ValidationError{Message: "invalid request body", Details: err.Error()}
	}
	return nil
}

package ai

import (
	"errors"
	"fmt"
)

// ErrNotConfigured indicates no provider credential is available (operator error).
var ErrNotConfigured = errors.New("ai provider credential is not configured")

// ErrEmptyResponse indicates the provider returned no content.
var ErrEmptyResponse = errors.New("ai provider returned no content")

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// UpstreamError carries the provider's error payload for non-success responses.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ai provider error (status %d): %s", e.StatusCode, e.Message)
}

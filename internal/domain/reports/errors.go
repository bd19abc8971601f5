package reports

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a lookup by unknown id
var ErrNotFound = errors.New("report not found")

// ValidationError covers missing/empty required input (HTTP 400)
type ValidationError struct {
	Message string
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return e.Message + ": " + e.Details
}

// Invalid builds a ValidationError without details
func Invalid(msg string) *ValidationError { return &ValidationError{Message: msg} }

// FormatError indicates the AI provider returned text that does not parse
// into (or does not look like) the requested JSON shape. Not retried.
type FormatError struct {
	Hint string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected ai response format (%s): %v", e.Hint, e.Err)
	}
	return "unexpected ai response format: " + e.Hint
}

func (e *FormatError) Unwrap() error { return e.Err }

package ai

import "context"

// Options for a single generation call
type Options struct {
	Model       string
	Temperature float32
	// JSONOnly asks the provider to enforce a parseable JSON document.
	// The gateway does not validate the JSON itself; callers do.
	JSONOnly bool
	System   string
}

// TextGenerator port for the LLM provider
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, opts Options) (string, error)
}

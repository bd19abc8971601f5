package reports

import (
	"encoding/json"
	"strings"
)

// StripFence removes a leading/trailing markdown code fence (with an
// optional language tag) around an AI response. Providers occasionally wrap
// JSON in ```json ... ``` even when told not to; the decoder runs on the
// inner text. Unfenced input passes through trimmed.
func StripFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if i := strings.IndexByte(t, '\n'); i >= 0 {
		// drop the rest of the fence line (language tag)
		t = t[i+1:]
	} else {
		t = strings.TrimPrefix(t, "json")
	}
	t = strings.TrimSpace(t)
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}

// DecodeObject strips an optional fence and decodes the text into dest,
// requiring a JSON object at the top level. Failures become *FormatError.
func DecodeObject(raw string, dest any) error {
	t := StripFence(raw)
	if !strings.HasPrefix(t, "{") {
		return &FormatError{Hint: "not a json object"}
	}
	if err := json.Unmarshal([]byte(t), dest); err != nil {
		return &FormatError{Hint: "json decode failed", Err: err}
	}
	return nil
}

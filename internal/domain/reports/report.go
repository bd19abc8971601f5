package reports

import "time"

// Status enum
type Status string

const (
	StatusDraft     Status = "draft"
	StatusGenerated Status = "generated"
	StatusCompleted Status = "completed"
)

// Record is implemented by all stored report envelopes so generic
// list helpers can sort on creation time.
type Record interface {
	Created() time.Time
}

package reports

import (
	"context"
	"encoding/json"
	"time"
)

// Store port: opaque JSON blobs keyed "{kind}:{id}"
type Store interface {
	Set(ctx context.Context, key string, value any) error
	// Get decodes the blob into dest; returns ErrNotFound for unknown keys.
	Get(ctx context.Context, key string, dest any) error
	// Delete is idempotent: removing an absent key is not an error.
	Delete(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error)
}

// HistoryRecord is the denormalized audit copy of a generated report.
// Its lifecycle is independent of the primary KV record (no cascade).
type HistoryRecord struct {
	ID        int64           `json:"id"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	UserID    string          `json:"user_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// History port for the audit mirror table
type History interface {
	Insert(ctx context.Context, rec *HistoryRecord) error
	// List returns records newest first; includeAll ignores the user filter
	// (admin view).
	List(ctx context.Context, userID string, includeAll bool) ([]*HistoryRecord, error)
}

// SnapshotArchive port for best-effort JSON snapshots of generated reports
type SnapshotArchive interface {
	Put(ctx context.Context, key string, data []byte) (string, error)
}

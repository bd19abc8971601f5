package reports

import (
	"context"
	"encoding/json"
	"log"

	"github.com/kaizen-center/backend/internal/domain/reports"
)

// bestEffortMirror copies a freshly generated report into the history
// table and, when an archive is configured, stores a JSON snapshot.
// Failures are logged and swallowed: the primary KV write already
// succeeded and the caller must still get its report back.
func (s *Service) bestEffortMirror(ctx context.Context, kind reports.Kind, id, userID string, rec any) {
	data, err := json.Marshal(rec)
	if err != nil {
		log.Printf("history mirror: marshal %s %s: %v", kind, id, err)
		return
	}

	if s.History != nil {
		hr := &reports.HistoryRecord{
			Type:      kind.HistoryTag(),
			Data:      data,
			UserID:    userID,
			CreatedAt: s.Clock.Now(),
		}
		if err := s.History.Insert(ctx, hr); err != nil {
			log.Printf("history mirror: insert %s %s: %v", kind, id, err)
		}
	}

	if s.Snapshots != nil {
		key := string(kind) + "/" + id + ".json"
		if _, err := s.Snapshots.Put(ctx, key, data); err != nil {
			log.Printf("snapshot archive: put %s: %v", key, err)
		}
	}
}

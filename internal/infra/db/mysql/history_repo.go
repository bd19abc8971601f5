package mysql

import (
	"context"
	"database/sql"

	"github.com/kaizen-center/backend/internal/domain/reports"
)

// HistoryRepository is the denormalized audit log of generated reports
// and freeform test runs.
type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Insert(ctx context.Context, rec *reports.HistoryRecord) error {
	const q = `
INSERT INTO test_history (type, data, user_id, created_at)
VALUES (?, ?, ?, ?);
`
	res, err := r.db.ExecContext(ctx, q, rec.Type, []byte(rec.Data), rec.UserID, rec.CreatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err == nil {
		rec.ID = id
	}
	return nil
}

func (r *HistoryRepository) List(ctx context.Context, userID string, includeAll bool) ([]*reports.HistoryRecord, error) {
	q := `
SELECT id, type, data, user_id, created_at
FROM test_history
WHERE user_id=?
ORDER BY created_at DESC, id DESC;
`
	args := []any{userID}
	if includeAll {
		q = `
SELECT id, type, data, user_id, created_at
FROM test_history
ORDER BY created_at DESC, id DESC;
`
		args = nil
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*reports.HistoryRecord
	for rows.Next() {
		var rec reports.HistoryRecord
		var data []byte
		if err := rows.Scan(&rec.ID, &rec.Type, &data, &rec.UserID, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Data = data
		out = append(out, &rec)
	}
	return out, rows.Err()
}

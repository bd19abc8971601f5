package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/kaizen-center/backend/internal/domain/reports"
)

// KVRepository stores report records as JSON blobs keyed "{kind}:{id}".
type KVRepository struct {
	db *sql.DB
}

func NewKVRepository(db *sql.DB) *KVRepository {
	return &KVRepository{db: db}
}

func (r *KVRepository) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO kv_store (kv_key, value)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE value=VALUES(value);
`
	_, err = r.db.ExecContext(ctx, q, key, data)
	return err
}

func (r *KVRepository) Get(ctx context.Context, key string, dest any) error {
	const q = `SELECT value FROM kv_store WHERE kv_key=?;`
	var data []byte
	if err := r.db.QueryRowContext(ctx, q, key).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return reports.ErrNotFound
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// Delete is idempotent; removing an absent key succeeds.
func (r *KVRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv_store WHERE kv_key=?;`, key)
	return err
}

func (r *KVRepository) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	const q = `SELECT value FROM kv_store WHERE kv_key LIKE ? ORDER BY updated_at DESC;`
	rows, err := r.db.QueryContext(ctx, q, escapeLike(prefix)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []json.RawMessage
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		out = append(out, json.RawMessage(data))
	}
	return out, rows.Err()
}

// escapeLike escapes LIKE wildcards in a literal prefix
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

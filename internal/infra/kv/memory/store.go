package memory

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/kaizen-center/backend/internal/domain/reports"
)

// Store is the in-process KV backend used for development and tests.
// Values are kept as marshaled JSON so reads return copies, matching the
// behavior of the durable backends.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Set(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
	return nil
}

func (s *Store) Get(_ context.Context, key string, dest any) error {
	s.mu.RLock()
	data, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return reports.ErrNotFound
	}
	return json.Unmarshal(data, dest)
}

// Delete is idempotent; removing an absent key succeeds.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

func (s *Store) GetByPrefix(_ context.Context, prefix string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []json.RawMessage
	for k, v := range s.data {
		if strings.HasPrefix(k, prefix) {
			out = append(out, json.RawMessage(v))
		}
	}
	return out, nil
}

// Len reports the number of stored records
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

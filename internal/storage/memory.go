package storage

import (
	"context"
	"sync"

	"github.com/ovumlab/ovumsort/internal/model"
)

// MemoryStore is a session-lifetime in-memory record store. It exists for
// users who do not want history to survive the process, and for tests.
type MemoryStore struct {
	records []model.AnalysisRecord
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make([]model.AnalysisRecord, 0)}
}

// Append adds a record to the end of the store.
func (s *MemoryStore) Append(ctx context.Context, record *model.AnalysisRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecord(record); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, *record)
	return nil
}

// All returns a copy of every record in insertion order.
func (s *MemoryStore) All(ctx context.Context) ([]model.AnalysisRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.AnalysisRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Count returns the number of stored records.
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Clear removes every record.
func (s *MemoryStore) Clear(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

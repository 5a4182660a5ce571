package history

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryStore implements Store in memory. Used in tests and when history
// persistence is disabled.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*EvaluationRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*EvaluationRecord)}
}

func (s *MemoryStore) Save(_ context.Context, record *EvaluationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[record.ID]; exists {
		return fmt.Errorf("duplicate evaluation record id %q", record.ID)
	}
	clone := *record
	s.records[record.ID] = &clone
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*EvaluationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *record
	return &clone, nil
}

func (s *MemoryStore) List(_ context.Context, limit int) ([]*EvaluationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*EvaluationRecord, 0, len(s.records))
	for _, record := range s.records {
		clone := *record
		records = append(records, &clone)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].EvaluatedAt.After(records[j].EvaluatedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (s *MemoryStore) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, record := range s.records {
		if record.EvaluatedAt.Before(cutoff) {
			delete(s.records, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.records)), nil
}

func (s *MemoryStore) Close() error {
	return nil
}

package repository

import (
	"context"
	"sync"

	"studentfit/fitness-planner/internal/domain"
)

// InMemoryUserRecordRepository is a map-backed UserRecordRepository used
// by tests and local experiments.
type InMemoryUserRecordRepository struct {
	mu      sync.RWMutex
	records map[string]domain.UserRecord
}

func NewInMemoryUserRecordRepository() *InMemoryUserRecordRepository {
	return &InMemoryUserRecordRepository{
		records: make(map[string]domain.UserRecord),
	}
}

func (r *InMemoryUserRecordRepository) Upsert(_ context.Context, record *domain.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = *record
	return nil
}

func (r *InMemoryUserRecordRepository) GetByID(_ context.Context, id string) (*domain.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

// Len reports the number of stored records.
func (r *InMemoryUserRecordRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

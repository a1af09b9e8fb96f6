package repository

import (
	"context"

	"studentfit/fitness-planner/internal/domain"
)

var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpsertFailed = RepositoryError("upsert failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRecordRepository persists one record per opaque user identifier.
// Upsert replaces the whole document (create-if-absent, no merge);
// concurrent writes for the same id are last-write-wins.
type UserRecordRepository interface {
	Upsert(ctx context.Context, record *domain.UserRecord) error
	GetByID(ctx context.Context, id string) (*domain.UserRecord, error)
}

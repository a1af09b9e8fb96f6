package mongo

import (
	"context"
	"errors"

	"studentfit/fitness-planner/internal/domain"
	"studentfit/fitness-planner/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const userCollectionName = "users"

// mongoUserRecordRepository implements repository.UserRecordRepository
// using one document per user id (_id = the opaque client token).
type mongoUserRecordRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRecordRepository creates a new instance backed by the
// "users" collection of the given database.
func NewMongoUserRecordRepository(db *mongo.Database) repository.UserRecordRepository {
	return &mongoUserRecordRepository{
		collection: db.Collection(userCollectionName),
	}
}

// Upsert replaces the whole document for record.ID, creating it when
// absent. No field-level merge happens: the stored document is exactly
// the record passed in, so racing writers are last-write-wins.
func (r *mongoUserRecordRepository) Upsert(ctx context.Context, record *domain.UserRecord) error {
	if record.ID == "" {
		return errors.New("user record id is required")
	}

	filter := bson.M{"_id": record.ID}
	opts := options.Replace().SetUpsert(true)

	result, err := r.collection.ReplaceOne(ctx, filter, record, opts)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 && result.UpsertedCount == 0 {
		return repository.ErrUpsertFailed
	}
	return nil
}

// GetByID retrieves the full record for id.
func (r *mongoUserRecordRepository) GetByID(ctx context.Context, id string) (*domain.UserRecord, error) {
	var record domain.UserRecord
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

package mongodb

import (
	"context"
	"time"

	"newsguard/internal/domain/entity"
	domainerrors "newsguard/internal/domain/errors"
	"newsguard/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type classificationRepository struct {
	collection *mongo.Collection
}

// NewClassificationRepository is the constructor for the document-backed classification repository.
func NewClassificationRepository(db *mongo.Database) repository.ClassificationRepository {
	return &classificationRepository{collection: db.Collection(classificationsCollection)}
}

func (repo *classificationRepository) Create(ctx context.Context, record *entity.Classification) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = record.CreatedAt

	if _, err := repo.collection.InsertOne(ctx, fromClassificationDomain(record)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create classification")
	}

	return nil
}

func (repo *classificationRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Classification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := repo.collection.Find(ctx, bson.M{"userId": userID.String()}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list classifications")
	}
	defer cursor.Close(ctx)

	var docs []*classificationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode classifications")
	}

	records := make([]*entity.Classification, 0, len(docs))
	for _, doc := range docs {
		record, err := toClassificationDomain(doc)
		if err != nil {
			return nil, errors.Wrap(err, "decode classification document")
		}
		records = append(records, record)
	}

	return records, nil
}

func (repo *classificationRepository) DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) error {
	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": id.String(), "userId": userID.String()})
	if err != nil {
		return errors.Wrap(err, "failed to delete classification")
	}
	if result.DeletedCount == 0 {
		return repository.ErrClassificationNotFound
	}

	return nil
}

func (repo *classificationRepository) DeleteAllByOwner(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := repo.collection.DeleteMany(ctx, bson.M{"userId": userID.String()})
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear classifications")
	}

	return result.DeletedCount, nil
}

package repository

import (
	"context"
	"errors"

	"newsguard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrClassificationNotFound is returned when no record matches both id and owner.
var ErrClassificationNotFound = errors.New("classification not found")

// ClassificationRepository persists classification records.
// Every read and delete is scoped to the owning user.
type ClassificationRepository interface {
	// Create stores a new record. ID and timestamps are filled in when zero.
	Create(ctx context.Context, record *entity.Classification) error

	// ListByOwner returns the owner's records, newest first.
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Classification, error)

	// DeleteByIDAndOwner removes one record in a single conditional delete.
	// It returns ErrClassificationNotFound when nothing matched.
	DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) error

	// DeleteAllByOwner removes every record of the owner and returns how many were removed.
	DeleteAllByOwner(ctx context.Context, userID uuid.UUID) (int64, error)
}

package usecase

import (
	"context"

	"newsguard/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckInput is a submission to the classification pipeline.
// Date accepts 2006-01-02 or RFC3339.
type CheckInput struct {
	Title   string
	Date    string
	Subject string
	Text    string
}

// ClassificationUsecase scores a submission and stores the verdict for its owner.
type ClassificationUsecase interface {
	Check(ctx context.Context, userID uuid.UUID, input *CheckInput) (*entity.Classification, error)
}

// HistoryUsecase gives an owner access to their own records only.
type HistoryUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Classification, error)
	DeleteOne(ctx context.Context, userID uuid.UUID, recordID string) error
	DeleteAll(ctx context.Context, userID uuid.UUID) (int64, error)
}

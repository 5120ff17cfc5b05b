package impl

import (
	"context"
	"log/slog"

	deliverycontext "newsguard/internal/delivery/context"
	"newsguard/internal/domain/entity"
	domainerrors "newsguard/internal/domain/errors"
	"newsguard/internal/domain/repository"
	"newsguard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type historyService struct {
	repo   repository.ClassificationRepository
	logger *slog.Logger
}

// HistoryServiceParams holds dependencies for HistoryService, injected by Fx.
type HistoryServiceParams struct {
	fx.In

	Repo   repository.ClassificationRepository
	Logger *slog.Logger
}

func NewHistoryService(params HistoryServiceParams) usecase.HistoryUsecase {
	return &historyService{
		repo:   params.Repo,
		logger: params.Logger,
	}
}

func (srv *historyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *historyService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Classification, error) {
	records, err := srv.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch history")
	}

	return records, nil
}

// DeleteOne reports a malformed id, a missing record and a record owned by
// someone else the same way.
func (srv *historyService) DeleteOne(ctx context.Context, userID uuid.UUID, recordID string) error {
	id, err := uuid.Parse(recordID)
	if err != nil {
		return domainerrors.ErrRecordNotFound
	}

	err = srv.repo.DeleteByIDAndOwner(ctx, id, userID)
	if errors.Is(err, repository.ErrClassificationNotFound) {
		return domainerrors.ErrRecordNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete record")
	}

	srv.log(ctx).Info("Classification deleted", slog.String("recordID", id.String()))

	return nil
}

func (srv *historyService) DeleteAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.repo.DeleteAllByOwner(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear history")
	}

	srv.log(ctx).Info("History cleared", slog.Int64("deleted", count))

	return count, nil
}

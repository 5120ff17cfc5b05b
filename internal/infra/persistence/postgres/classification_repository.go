package postgres

import (
	"context"

	"newsguard/internal/domain/entity"
	domainerrors "newsguard/internal/domain/errors"
	"newsguard/internal/domain/repository"
	"newsguard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type classificationRepository struct {
	db *gorm.DB
}

// NewClassificationRepository is the constructor for classificationRepository.
func NewClassificationRepository(db *gorm.DB) repository.ClassificationRepository {
	return &classificationRepository{db: db}
}

func (repo *classificationRepository) Create(ctx context.Context, record *entity.Classification) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	recordM := fromClassificationDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("classification violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create classification")
	}

	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

func (repo *classificationRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Classification, error) {
	var rows []*model.ClassificationModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list classifications")
	}

	records := make([]*entity.Classification, 0, len(rows))
	for _, row := range rows {
		records = append(records, toClassificationDomain(row))
	}

	return records, nil
}

// DeleteByIDAndOwner deletes in one statement so another user's record is
// indistinguishable from a missing one.
func (repo *classificationRepository) DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ClassificationModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete classification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClassificationNotFound
	}

	return nil
}

func (repo *classificationRepository) DeleteAllByOwner(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ClassificationModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to clear classifications")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toClassificationDomain(data *model.ClassificationModel) *entity.Classification {
	if data == nil {
		return nil
	}

	return &entity.Classification{
		ID:         data.ID,
		UserID:     data.UserID,
		Title:      data.Title,
		Date:       data.Date,
		Subject:    data.Subject,
		Text:       data.Text,
		Prediction: entity.Prediction(data.Prediction),
		Confidence: data.Confidence,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromClassificationDomain(data *entity.Classification) *model.ClassificationModel {
	if data == nil {
		return nil
	}

	return &model.ClassificationModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Title:      data.Title,
		Date:       data.Date,
		Subject:    data.Subject,
		Text:       data.Text,
		Prediction: string(data.Prediction),
		Confidence: data.Confidence,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

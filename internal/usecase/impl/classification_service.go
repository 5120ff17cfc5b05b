package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"newsguard/config"
	deliverycontext "newsguard/internal/delivery/context"
	"newsguard/internal/domain/entity"
	domainerrors "newsguard/internal/domain/errors"
	"newsguard/internal/domain/repository"
	"newsguard/internal/domain/service"
	"newsguard/internal/infra/metrics"
	"newsguard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minTextLength       = 10
	minTitleLength      = 2
	maxTitleLength      = 200
	defaultStoreTimeout = 5 * time.Second
)

// classificationService implements the ClassificationUsecase interface.
type classificationService struct {
	repo         repository.ClassificationRepository
	scorer       service.Scorer
	metrics      *metrics.Metrics
	storeTimeout time.Duration
	logger       *slog.Logger
}

// ClassificationServiceParams holds dependencies for ClassificationService, injected by Fx.
type ClassificationServiceParams struct {
	fx.In

	Repo    repository.ClassificationRepository
	Scorer  service.Scorer
	Metrics *metrics.Metrics `optional:"true"`
	Config  *config.Config
	Logger  *slog.Logger
}

// NewClassificationService is the constructor for classificationService.
func NewClassificationService(params ClassificationServiceParams) usecase.ClassificationUsecase {
	storeTimeout := defaultStoreTimeout
	if params.Config != nil && params.Config.Storage.OperationTimeout > 0 {
		storeTimeout = params.Config.Storage.OperationTimeout
	}

	return &classificationService{
		repo:         params.Repo,
		scorer:       params.Scorer,
		metrics:      params.Metrics,
		storeTimeout: storeTimeout,
		logger:       params.Logger,
	}
}

func (srv *classificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Check runs validate, score, normalize and persist in order; the first failing stage ends it.
func (srv *classificationService) Check(ctx context.Context, userID uuid.UUID, input *usecase.CheckInput) (*entity.Classification, error) {
	record, err := validateCheckInput(input)
	if err != nil {
		return nil, err
	}
	record.UserID = userID

	score, err := srv.scorer.Score(ctx, record.Text)
	if err != nil {
		srv.log(ctx).Error("Scoring failed, nothing stored", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstream, err.Error())
	}

	record.Prediction = entity.NormalizePrediction(score.Label)
	record.Confidence = entity.NormalizeConfidence(score.Confidence)

	if err := srv.persist(ctx, record); err != nil {
		return nil, err
	}

	if srv.metrics != nil {
		srv.metrics.ClassificationStored(string(record.Prediction))
	}
	srv.log(ctx).Info("Classification stored",
		slog.String("recordID", record.ID.String()),
		slog.String("prediction", string(record.Prediction)),
	)

	return record, nil
}

// persist writes under a context detached from the client, so a verdict that
// was obtained is either stored or reported as a failure.
func (srv *classificationService) persist(ctx context.Context, record *entity.Classification) error {
	storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.storeTimeout)
	defer cancel()

	err := srv.repo.Create(storeCtx, record)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrStaleSession
	}
	if err != nil {
		srv.log(ctx).Error("Failed to store classification", slog.Any("error", err))

		return errors.Wrap(err, "failed to store classification")
	}

	return nil
}

// validateCheckInput trims the submission and returns an unsaved record.
func validateCheckInput(input *usecase.CheckInput) (*entity.Classification, error) {
	title := strings.TrimSpace(input.Title)
	subject := strings.TrimSpace(input.Subject)
	text := strings.TrimSpace(input.Text)
	rawDate := strings.TrimSpace(input.Date)

	if title == "" || subject == "" || text == "" || rawDate == "" {
		return nil, domainerrors.ErrValidationFailed
	}
	if n := utf8.RuneCountInString(title); n < minTitleLength || n > maxTitleLength {
		return nil, domainerrors.ErrInvalidInput.
			WithMessage("Title must be between 2 and 200 characters").
			WithDetails("title")
	}
	if utf8.RuneCountInString(text) < minTextLength {
		return nil, domainerrors.ErrInvalidInput.
			WithMessage("Text must be at least 10 characters").
			WithDetails("text")
	}

	date, err := parseCalendarDate(rawDate)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.
			WithMessage("Date must be a valid date").
			WithDetails("date")
	}

	return &entity.Classification{
		Title:   title,
		Date:    date,
		Subject: subject,
		Text:    text,
	}, nil
}

// parseCalendarDate accepts 2006-01-02 or RFC3339 and keeps only the calendar day.
func parseCalendarDate(raw string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, errors.WithStack(err)
		}
	}
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

package impl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsguard/config"
	"newsguard/internal/domain/entity"
	domainerrors "newsguard/internal/domain/errors"
	"newsguard/internal/domain/repository"
	"newsguard/internal/domain/service"
	"newsguard/internal/infra/metrics"
	mockRepo "newsguard/internal/mocks/repository"
	mockSvc "newsguard/internal/mocks/service"
	"newsguard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type classificationServiceFixtures struct {
	service usecase.ClassificationUsecase
	repo    *mockRepo.MockClassificationRepository
	scorer  *mockSvc.MockScorer
	metrics *metrics.Metrics
}

func createTestClassificationService(t *testing.T) classificationServiceFixtures {
	repo := mockRepo.NewMockClassificationRepository(t)
	scorer := mockSvc.NewMockScorer(t)
	m := metrics.New()

	cfg := &config.Config{}
	cfg.Storage.OperationTimeout = time.Second

	svc := NewClassificationService(ClassificationServiceParams{
		Repo:    repo,
		Scorer:  scorer,
		Metrics: m,
		Config:  cfg,
		Logger:  newDiscardLogger(),
	})

	return classificationServiceFixtures{service: svc, repo: repo, scorer: scorer, metrics: m}
}

func validCheckInput() *usecase.CheckInput {
	return &usecase.CheckInput{
		Title:   "  Moon landing  ",
		Date:    "2025-06-01",
		Subject: " Science ",
		Text:    "  The moon is made of cheese, scientists confirm.  ",
	}
}

func confidence(v float64) *float64 { return &v }

func TestClassificationService_Check_Success(t *testing.T) {
	fx := createTestClassificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.scorer.EXPECT().
		Score(ctx, "The moon is made of cheese, scientists confirm.").
		Return(&service.Score{Label: "REAL", Confidence: confidence(0.87)}, nil)
	fx.repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Classification")).
		Run(func(storeCtx context.Context, record *entity.Classification) {
			_, hasDeadline := storeCtx.Deadline()
			assert.True(t, hasDeadline)
			record.ID = uuid.New()
		}).
		Return(nil)

	record, err := fx.service.Check(ctx, userID, validCheckInput())

	require.NoError(t, err)
	assert.Equal(t, userID, record.UserID)
	assert.Equal(t, "Moon landing", record.Title)
	assert.Equal(t, "Science", record.Subject)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), record.Date)
	assert.Equal(t, entity.PredictionReal, record.Prediction)
	require.NotNil(t, record.Confidence)
	assert.InDelta(t, 0.87, *record.Confidence, 1e-9)

	rec := httptest.NewRecorder()
	fx.metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `newsguard_classifications_total{prediction="real"} 1`)
}

func TestClassificationService_Check_NormalizesLabel(t *testing.T) {
	tests := []struct {
		label      string
		confidence *float64
		want       entity.Prediction
		wantConf   bool
	}{
		{label: "FAKE", confidence: confidence(0.5), want: entity.PredictionFake, wantConf: true},
		{label: "spam", want: entity.PredictionUnknown},
		{label: "", want: entity.PredictionUnknown},
		{label: "real", confidence: confidence(1.7), want: entity.PredictionReal, wantConf: false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			fx := createTestClassificationService(t)
			fx.scorer.EXPECT().Score(mock.Anything, mock.Anything).
				Return(&service.Score{Label: tt.label, Confidence: tt.confidence}, nil)
			fx.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

			record, err := fx.service.Check(context.Background(), uuid.New(), validCheckInput())

			require.NoError(t, err)
			assert.Equal(t, tt.want, record.Prediction)
			assert.Equal(t, tt.wantConf, record.Confidence != nil)
		})
	}
}

func TestClassificationService_Check_InvalidInputNeverCallsScorer(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.CheckInput)
	}{
		{name: "nine character text", mutate: func(in *usecase.CheckInput) { in.Text = "123456789" }},
		{name: "padded short text", mutate: func(in *usecase.CheckInput) { in.Text = "   short    " }},
		{name: "missing subject", mutate: func(in *usecase.CheckInput) { in.Subject = "" }},
		{name: "missing date", mutate: func(in *usecase.CheckInput) { in.Date = " " }},
		{name: "bad date", mutate: func(in *usecase.CheckInput) { in.Date = "yesterday" }},
		{name: "short title", mutate: func(in *usecase.CheckInput) { in.Title = "a" }},
		{name: "long title", mutate: func(in *usecase.CheckInput) { in.Title = strings.Repeat("t", 201) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestClassificationService(t)
			input := validCheckInput()
			tt.mutate(input)

			record, err := fx.service.Check(context.Background(), uuid.New(), input)

			assert.Nil(t, record)
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.HTTPCode())
			fx.scorer.AssertNotCalled(t, "Score", mock.Anything, mock.Anything)
		})
	}
}

func TestClassificationService_Check_AcceptsRFC3339Date(t *testing.T) {
	fx := createTestClassificationService(t)
	fx.scorer.EXPECT().Score(mock.Anything, mock.Anything).Return(&service.Score{Label: "fake"}, nil)
	fx.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validCheckInput()
	input.Date = "2025-06-01T23:30:00+02:00"

	record, err := fx.service.Check(context.Background(), uuid.New(), input)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), record.Date)
}

func TestClassificationService_Check_UpstreamFailureStoresNothing(t *testing.T) {
	fx := createTestClassificationService(t)
	fx.scorer.EXPECT().Score(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	record, err := fx.service.Check(context.Background(), uuid.New(), validCheckInput())

	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrUpstream)
	fx.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClassificationService_Check_StoreFailure(t *testing.T) {
	fx := createTestClassificationService(t)
	fx.scorer.EXPECT().Score(mock.Anything, mock.Anything).Return(&service.Score{Label: "real"}, nil)
	fx.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := fx.service.Check(context.Background(), uuid.New(), validCheckInput())

	require.Error(t, err)
	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestClassificationService_Check_OwnerVanished(t *testing.T) {
	fx := createTestClassificationService(t)
	fx.scorer.EXPECT().Score(mock.Anything, mock.Anything).Return(&service.Score{Label: "real"}, nil)
	fx.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrUserNotFound)

	_, err := fx.service.Check(context.Background(), uuid.New(), validCheckInput())

	assert.ErrorIs(t, err, domainerrors.ErrStaleSession)
}

func TestClassificationService_Check_PersistSurvivesClientCancel(t *testing.T) {
	fx := createTestClassificationService(t)
	ctx, cancel := context.WithCancel(context.Background())

	fx.scorer.EXPECT().Score(mock.Anything, mock.Anything).
		Run(func(context.Context, string) { cancel() }).
		Return(&service.Score{Label: "fake"}, nil)
	fx.repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(storeCtx context.Context, _ *entity.Classification) {
			assert.NoError(t, storeCtx.Err())
		}).
		Return(nil)

	_, err := fx.service.Check(ctx, uuid.New(), validCheckInput())

	assert.NoError(t, err)
}

package postgres

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"newsguard/config"
	"newsguard/internal/domain/entity"
	domainerrors "newsguard/internal/domain/errors"
	"newsguard/internal/domain/repository"
	"newsguard/internal/errors"
	"newsguard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := Open(sqlite.Open("file::memory:?_foreign_keys=1"), logger, &config.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the in-memory database alive and shared.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.ClassificationModel{}))

	return db
}

func newTestUser(username, email string) *entity.User {
	return &entity.User{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$digest",
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := newTestUser("ada", "ada@example.com")
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", byID.Username)
	assert.Equal(t, "$2a$10$digest", byID.PasswordHash)

	byName, err := repo.FindByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repo.FindByUsernameOrEmail(ctx, "someone-else", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByUsernameOrEmail(ctx, "nobody", "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, newTestUser("ada", "ada@example.com")))

	err := repo.Create(ctx, newTestUser("ada", "other@example.com"))
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	err = repo.Create(ctx, newTestUser("other", "ada@example.com"))
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func seedRecord(t *testing.T, repo repository.ClassificationRepository, owner uuid.UUID, createdAt time.Time) *entity.Classification {
	t.Helper()

	confidence := 0.87
	record := &entity.Classification{
		UserID:     owner,
		Title:      "Headline",
		Date:       time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		Subject:    "News",
		Text:       "Some sufficiently long article body.",
		Prediction: entity.PredictionReal,
		Confidence: &confidence,
		CreatedAt:  createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), record))

	return record
}

func TestClassificationRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewClassificationRepository(db)

	alice := newTestUser("alice", "alice@example.com")
	bob := newTestUser("bob", "bob@example.com")
	require.NoError(t, users.Create(ctx, alice))
	require.NoError(t, users.Create(ctx, bob))

	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	oldest := seedRecord(t, repo, alice.ID, base)
	newest := seedRecord(t, repo, alice.ID, base.Add(2*time.Hour))
	middle := seedRecord(t, repo, alice.ID, base.Add(time.Hour))
	seedRecord(t, repo, bob.ID, base.Add(3*time.Hour))

	records, err := repo.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []uuid.UUID{newest.ID, middle.ID, oldest.ID},
		[]uuid.UUID{records[0].ID, records[1].ID, records[2].ID})
	assert.Equal(t, entity.PredictionReal, records[0].Prediction)
	require.NotNil(t, records[0].Confidence)
	assert.InDelta(t, 0.87, *records[0].Confidence, 1e-9)

	empty, err := repo.ListByOwner(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestClassificationRepository_DeleteScopedToOwner(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewClassificationRepository(db)

	alice := newTestUser("alice", "alice@example.com")
	bob := newTestUser("bob", "bob@example.com")
	require.NoError(t, users.Create(ctx, alice))
	require.NoError(t, users.Create(ctx, bob))

	bobsRecord := seedRecord(t, repo, bob.ID, time.Now())

	err := repo.DeleteByIDAndOwner(ctx, bobsRecord.ID, alice.ID)
	assert.ErrorIs(t, err, repository.ErrClassificationNotFound)

	err = repo.DeleteByIDAndOwner(ctx, uuid.New(), alice.ID)
	assert.ErrorIs(t, err, repository.ErrClassificationNotFound)

	require.NoError(t, repo.DeleteByIDAndOwner(ctx, bobsRecord.ID, bob.ID))

	err = repo.DeleteByIDAndOwner(ctx, bobsRecord.ID, bob.ID)
	assert.ErrorIs(t, err, repository.ErrClassificationNotFound)
}

func TestClassificationRepository_DeleteAllByOwner(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewClassificationRepository(db)

	alice := newTestUser("alice", "alice@example.com")
	bob := newTestUser("bob", "bob@example.com")
	require.NoError(t, users.Create(ctx, alice))
	require.NoError(t, users.Create(ctx, bob))

	count, err := repo.DeleteAllByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	seedRecord(t, repo, alice.ID, time.Now())
	seedRecord(t, repo, alice.ID, time.Now().Add(time.Second))
	seedRecord(t, repo, bob.ID, time.Now())

	count, err = repo.DeleteAllByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	remaining, err := repo.ListByOwner(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestRunMigrations_UsesEmbeddedDir(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	var gotDir string
	gooseUp = func(_ context.Context, _ *sql.DB, dir string) error {
		gotDir = dir
		return nil
	}

	require.NoError(t, RunMigrations(context.Background(), nil))
	assert.Equal(t, ".", gotDir)

	gooseUp = func(context.Context, *sql.DB, string) error {
		return errors.New("boom")
	}
	err := RunMigrations(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestConstraintHelpers(t *testing.T) {
	assert.False(t, isUniqueConstraintViolation(nil))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`)))
	assert.True(t, isUniqueConstraintViolation(errors.New("UNIQUE constraint failed: users.username")))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))

	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(errors.New("FOREIGN KEY constraint failed")))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
}

package mongodb

import (
	"context"
	"testing"
	"time"

	"newsguard/internal/domain/entity"
	domainerrors "newsguard/internal/domain/errors"
	"newsguard/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockDeployment(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

// toBSOND renders a stored document the way the server returns it in a cursor batch.
func toBSOND(t *testing.T, doc any) bson.D {
	t.Helper()

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var out bson.D
	require.NoError(t, bson.Unmarshal(raw, &out))

	return out
}

// sentCommand returns the next command the repository sent to the deployment.
func sentCommand(mt *mtest.T, name string) bson.Raw {
	mt.Helper()

	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	require.Equal(mt, name, evt.CommandName)

	return evt.Command
}

// deleteFilter extracts the filter of the single statement of a delete command.
func deleteFilter(mt *mtest.T) bson.Raw {
	mt.Helper()

	statements, err := sentCommand(mt, "delete").Lookup("deletes").Array().Values()
	require.NoError(mt, err)
	require.Len(mt, statements, 1)

	return statements[0].Document().Lookup("q").Document()
}

func deleted(n int32) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "n", Value: n})
}

func TestClassificationRepository_DeleteScopedToOwner(t *testing.T) {
	mt := newMockDeployment(t)
	alice, bob := uuid.New(), uuid.New()
	bobsRecord := uuid.New()

	mt.Run("another owner's record is not found", func(mt *mtest.T) {
		repo := NewClassificationRepository(mt.DB)
		mt.AddMockResponses(deleted(0))

		err := repo.DeleteByIDAndOwner(context.Background(), bobsRecord, alice)

		assert.ErrorIs(mt, err, repository.ErrClassificationNotFound)
		filter := deleteFilter(mt)
		assert.Equal(mt, bobsRecord.String(), filter.Lookup("_id").StringValue())
		assert.Equal(mt, alice.String(), filter.Lookup("userId").StringValue())
	})

	mt.Run("owner deletes", func(mt *mtest.T) {
		repo := NewClassificationRepository(mt.DB)
		mt.AddMockResponses(deleted(1))

		require.NoError(mt, repo.DeleteByIDAndOwner(context.Background(), bobsRecord, bob))

		filter := deleteFilter(mt)
		assert.Equal(mt, bob.String(), filter.Lookup("userId").StringValue())
	})
}

func TestClassificationRepository_DeleteAllByOwner(t *testing.T) {
	mt := newMockDeployment(t)
	alice := uuid.New()

	mt.Run("no records", func(mt *mtest.T) {
		repo := NewClassificationRepository(mt.DB)
		mt.AddMockResponses(deleted(0))

		count, err := repo.DeleteAllByOwner(context.Background(), alice)

		require.NoError(mt, err)
		assert.Zero(mt, count)
		filter := deleteFilter(mt)
		assert.Equal(mt, alice.String(), filter.Lookup("userId").StringValue())
	})

	mt.Run("counts deleted records", func(mt *mtest.T) {
		repo := NewClassificationRepository(mt.DB)
		mt.AddMockResponses(deleted(3))

		count, err := repo.DeleteAllByOwner(context.Background(), alice)

		require.NoError(mt, err)
		assert.Equal(mt, int64(3), count)
	})
}

func TestClassificationRepository_ListNewestFirst(t *testing.T) {
	mt := newMockDeployment(t)
	owner := uuid.New()
	conf := 0.87
	older := &entity.Classification{
		ID: uuid.New(), UserID: owner, Title: "Older", Subject: "News", Text: "first submitted text",
		Prediction: entity.PredictionFake, Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC),
	}
	newer := &entity.Classification{
		ID: uuid.New(), UserID: owner, Title: "Newer", Subject: "News", Text: "second submitted text",
		Prediction: entity.PredictionReal, Confidence: &conf, Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
	}

	mt.Run("sorted by creation time descending", func(mt *mtest.T) {
		repo := NewClassificationRepository(mt.DB)
		ns := mt.DB.Name() + "." + classificationsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			toBSOND(mt.T, fromClassificationDomain(newer)),
			toBSOND(mt.T, fromClassificationDomain(older)),
		))

		records, err := repo.ListByOwner(context.Background(), owner)

		require.NoError(mt, err)
		require.Len(mt, records, 2)
		assert.Equal(mt, newer.ID, records[0].ID)
		assert.Equal(mt, older.ID, records[1].ID)
		require.NotNil(mt, records[0].Confidence)
		assert.InDelta(mt, 0.87, *records[0].Confidence, 1e-9)
		assert.Nil(mt, records[1].Confidence)

		cmd := sentCommand(mt, "find")
		assert.Equal(mt, owner.String(), cmd.Lookup("filter").Document().Lookup("userId").StringValue())

		var sort bson.D
		require.NoError(mt, bson.Unmarshal(cmd.Lookup("sort").Document(), &sort))
		require.NotEmpty(mt, sort)
		assert.Equal(mt, "createdAt", sort[0].Key)
		assert.EqualValues(mt, -1, sort[0].Value)
	})

	mt.Run("empty history", func(mt *mtest.T) {
		repo := NewClassificationRepository(mt.DB)
		ns := mt.DB.Name() + "." + classificationsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		records, err := repo.ListByOwner(context.Background(), owner)

		require.NoError(mt, err)
		assert.NotNil(mt, records)
		assert.Empty(mt, records)
	})
}

func TestUserRepository_FindByUsernameOrEmail(t *testing.T) {
	mt := newMockDeployment(t)
	existing := &entity.User{
		ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", Username: "ada", Email: "ada@example.com",
		PasswordHash: "$2a$10$digest", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	mt.Run("matches either identifier", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		ns := mt.DB.Name() + "." + usersCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toBSOND(mt.T, fromUserDomain(existing))))

		user, err := repo.FindByUsernameOrEmail(context.Background(), "someone", "ada@example.com")

		require.NoError(mt, err)
		assert.Equal(mt, existing.ID, user.ID)
		assert.Equal(mt, "$2a$10$digest", user.PasswordHash)

		clauses, err := sentCommand(mt, "find").Lookup("filter").Document().Lookup("$or").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, clauses, 2)
		assert.Equal(mt, "someone", clauses[0].Document().Lookup("username").StringValue())
		assert.Equal(mt, "ada@example.com", clauses[1].Document().Lookup("email").StringValue())
	})

	mt.Run("no match", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		ns := mt.DB.Name() + "." + usersCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByUsernameOrEmail(context.Background(), "nobody", "nobody@example.com")

		assert.ErrorIs(mt, err, repository.ErrUserNotFound)
	})
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	mt := newMockDeployment(t)

	mt.Run("duplicate key is a conflict", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: users index: username_1",
		}))

		err := repo.Create(context.Background(), &entity.User{Username: "ada", Email: "ada@example.com"})

		assert.ErrorIs(mt, err, domainerrors.ErrUserAlreadyExists)
	})

	mt.Run("other write failures are database errors", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad value",
		}))

		err := repo.Create(context.Background(), &entity.User{Username: "ada", Email: "ada@example.com"})

		require.Error(mt, err)
		assert.NotErrorIs(mt, err, domainerrors.ErrUserAlreadyExists)
		var appErr domainerrors.AppError
		require.ErrorAs(mt, err, &appErr)
		assert.Equal(mt, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	})
}

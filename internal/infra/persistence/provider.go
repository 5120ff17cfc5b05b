// Package persistence selects the storage backend named by storage.driver.
package persistence

import (
	"log/slog"

	"newsguard/config"
	"newsguard/internal/domain/repository"
	"newsguard/internal/infra/persistence/mongodb"
	"newsguard/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repositories backed by one storage engine.
type Repositories struct {
	fx.Out

	Users           repository.UserRepository
	Classifications repository.ClassificationRepository
}

// NewRepositories opens the configured backend and returns its repositories.
func NewRepositories(params Params) (Repositories, error) {
	driver := params.Config.Storage.Driver
	logger := params.Logger.With(slog.String("storage", driver))

	switch driver {
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		logger.Info("Using PostgreSQL storage")

		return Repositories{
			Users:           postgres.NewUserRepository(db),
			Classifications: postgres.NewClassificationRepository(db),
		}, nil

	case config.StorageDriverMongo:
		db, err := mongodb.New(mongodb.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		logger.Info("Using MongoDB storage", slog.String("database", params.Config.Mongo.Database))

		return Repositories{
			Users:           mongodb.NewUserRepository(db),
			Classifications: mongodb.NewClassificationRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)

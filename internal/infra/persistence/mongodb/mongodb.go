// Package mongodb is the document-store implementation of the persistence layer.
package mongodb

import (
	"context"
	"log/slog"

	"newsguard/config"
	"newsguard/internal/domain/lifecycle"
	"newsguard/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	usersCollection           = "users"
	classificationsCollection = "classifications"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects the client lazily and verifies it, with indexes, on start.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg.URI == "" || cfg.Database == "" {
		return nil, errors.New("mongo.uri and mongo.database must be provided")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMonitor(newCommandMonitor(params.Logger))
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}

	// Connect does not perform I/O; the ping in OnStart does.
	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}
	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			return EnsureIndexes(ctx, db)
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// EnsureIndexes creates the unique user identifiers and the history index.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_users_username"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_users_email"),
		},
	})
	if err != nil {
		return errors.Wrap(err, "create user indexes")
	}

	_, err = db.Collection(classificationsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_classifications_user_created"),
	})
	if err != nil {
		return errors.Wrap(err, "create classification indexes")
	}

	return nil
}

// newCommandMonitor logs failed commands; successful ones are too noisy.
func newCommandMonitor(logger *slog.Logger) *event.CommandMonitor {
	return &event.CommandMonitor{
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			if logger == nil {
				return
			}
			logger.LogAttrs(ctx, slog.LevelWarn, "MongoDB command failed",
				slog.String("command", evt.CommandName),
				slog.Int64("request_id", evt.RequestID),
				slog.Duration("elapsed", evt.Duration),
				slog.String("error", evt.Failure),
			)
		},
	}
}

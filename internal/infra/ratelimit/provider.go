package ratelimit

import (
	"context"
	"log/slog"

	"newsguard/config"
	"newsguard/internal/domain/lifecycle"
	"newsguard/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	PolicyGlobal         = "global"
	PolicyClassification = "classification"
)

// StoreParams holds dependencies for the counter store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCounterStore creates the store named by rateLimit.backend.
func NewCounterStore(params StoreParams) (service.CounterStore, error) {
	cfg := params.Config.RateLimit
	logger := params.Logger

	var store service.CounterStore

	switch cfg.Backend {
	case config.RateLimitBackendMemory, "":
		logger.Info("Using in-memory rate-limit store")
		store = NewMemoryStore(cfg.JanitorInterval)

	case config.RateLimitBackendRedis:
		if params.Config.Redis.Addr == "" {
			return nil, errors.New("redis.addr is required for the redis rate-limit backend")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		})
		logger.Info("Using redis rate-limit store", slog.String("addr", params.Config.Redis.Addr))
		store = NewRedisStore(client, cfg.KeyPrefix)

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
		})

	default:
		return nil, errors.Errorf("unknown rate-limit backend: %s", cfg.Backend)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing rate-limit store")

			return store.Close()
		},
	})

	return store, nil
}

// Limiters holds one limiter per configured policy.
type Limiters struct {
	Global         *Limiter
	Classification *Limiter
}

// NewLimiters builds the global and classification limiters over one store.
func NewLimiters(store service.CounterStore, cfg *config.Config) *Limiters {
	return &Limiters{
		Global:         NewLimiter(store, policyFromConfig(PolicyGlobal, cfg.RateLimit.Global)),
		Classification: NewLimiter(store, policyFromConfig(PolicyClassification, cfg.RateLimit.Classification)),
	}
}

func policyFromConfig(name string, cfg config.PolicyConfig) Policy {
	return Policy{
		Name:    name,
		Limit:   cfg.Limit,
		Window:  cfg.Window,
		Message: cfg.Message,
	}
}

// Module provides the rate-limit FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCounterStore, NewLimiters),
)

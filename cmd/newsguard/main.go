package main

import (
	"context"
	"log/slog"
	"os"

	"newsguard/config"
	"newsguard/internal/delivery"
	"newsguard/internal/delivery/api"
	"newsguard/internal/delivery/api/middleware"
	"newsguard/internal/delivery/api/router/handler"
	"newsguard/internal/infra/auth"
	logs "newsguard/internal/infra/log"
	"newsguard/internal/infra/metrics"
	"newsguard/internal/infra/persistence"
	"newsguard/internal/infra/ratelimit"
	"newsguard/internal/infra/scorer"
	"newsguard/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(appOptions()...).Run()
}

func appOptions() []fx.Option {
	return []fx.Option{
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	}
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			metrics.New,
		),
		persistence.Module,
		ratelimit.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			scorer.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewClassificationService,
			impl.NewHistoryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewNewsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer serves from an OnStart hook. Invoke runs after every provider
// has registered its hooks, so database pings and migrations finish first.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"newsguard/config"
	"newsguard/internal/delivery/api/middleware"
	"newsguard/internal/delivery/api/router/handler"
	"newsguard/internal/infra/metrics"
	"newsguard/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	NewsHandler         *handler.NewsHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Limiters            *ratelimit.Limiters
	Metrics             *metrics.Metrics
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	newsHandler    *handler.NewsHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimit      *middleware.RateLimitMiddleware
	limiters       *ratelimit.Limiters
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		newsHandler:    params.NewsHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimit:      params.RateLimitMiddleware,
		limiters:       params.Limiters,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check and metrics stay outside the limiters
	e.GET("/health", handler.HealthCheck)
	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	api := e.Group("/api", r.rateLimit.Limit(r.limiters.Global))
	api.GET("", handler.Banner)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// The classification limiter runs before authentication so rejected
	// requests cost no store lookup.
	api.POST("/check-news", r.newsHandler.CheckNews,
		r.rateLimit.Limit(r.limiters.Classification),
		r.authMiddleware.Authenticate,
	)

	historyGroup := api.Group("/news/history", r.authMiddleware.Authenticate)
	{
		historyGroup.GET("", r.newsHandler.History)
		historyGroup.DELETE("", r.newsHandler.DeleteAll)
		historyGroup.DELETE("/:id", r.newsHandler.DeleteOne)
	}
}

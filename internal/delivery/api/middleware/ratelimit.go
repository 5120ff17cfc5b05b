package middleware

import (
	"log/slog"
	"strconv"
	"time"

	deliverycontext "newsguard/internal/delivery/context"
	domainerrors "newsguard/internal/domain/errors"
	"newsguard/internal/infra/metrics"
	"newsguard/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	HeaderRateLimitLimit     = "RateLimit-Limit"
	HeaderRateLimitRemaining = "RateLimit-Remaining"
	HeaderRateLimitReset     = "RateLimit-Reset"

	storeFailureLogInterval = 30 * time.Second
)

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// RateLimitMiddleware turns a Limiter into echo middleware keyed by client IP.
type RateLimitMiddleware struct {
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		metrics: params.Metrics,
		logger:  params.Logger,
		now:     time.Now,
	}
}

// Limit rejects requests over the limiter's policy with 429 before they reach
// the next handler. Store failures let the request through.
func (m *RateLimitMiddleware) Limit(limiter *ratelimit.Limiter) echo.MiddlewareFunc {
	policy := limiter.Policy()
	rejection := domainerrors.ErrRateLimited
	if policy.Message != "" {
		rejection = rejection.WithMessage(policy.Message)
	}
	storeFailureLog := &rate.Sometimes{First: 1, Interval: storeFailureLogInterval}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			decision, err := limiter.Allow(ctx, c.RealIP())
			if err != nil {
				m.metrics.RateLimitStoreFailed(policy.Name)
				storeFailureLog.Do(func() {
					deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate-limit store unavailable, allowing request",
						slog.String("policy", policy.Name),
						slog.Any("error", err),
					)
				})

				return next(c)
			}

			now := m.now()
			header := c.Response().Header()
			header.Set(HeaderRateLimitLimit, strconv.Itoa(decision.Limit))
			header.Set(HeaderRateLimitRemaining, strconv.Itoa(decision.Remaining))
			header.Set(HeaderRateLimitReset, strconv.FormatInt(decision.RetryAfterSeconds(now), 10))

			if !decision.Allowed {
				m.metrics.RateLimitRejected(policy.Name)
				header.Set(echo.HeaderRetryAfter, strconv.FormatInt(decision.RetryAfterSeconds(now), 10))

				return rejection
			}

			return next(c)
		}
	}
}

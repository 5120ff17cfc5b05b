package middleware

import (
	"log/slog"
	"strings"

	"newsguard/config"
	deliverycontext "newsguard/internal/delivery/context"
	"newsguard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthMiddleware is the session gate in front of every owner-scoped route.
type AuthMiddleware struct {
	authUC     usecase.AuthUsecase
	cookieName string
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC:     params.AuthUC,
		cookieName: params.Config.Auth.CookieName,
		logger:     params.Logger,
	}
}

// Authenticate reads the session token from the cookie, else the bearer
// header, and attaches the caller's identity to the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		identity, err := m.authUC.Authenticate(ctx, m.tokenFrom(c))
		if err != nil {
			return err
		}

		deliverycontext.SetIdentity(c, identity)

		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", identity.ID.String()))
		req := c.Request()
		c.SetRequest(req.WithContext(deliverycontext.WithLogger(req.Context(), reqLogger)))

		return next(c)
	}
}

func (m *AuthMiddleware) tokenFrom(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}

	return ""
}

// GetIdentity returns the caller set by Authenticate.
func GetIdentity(c echo.Context) (*usecase.Identity, bool) {
	return deliverycontext.IdentityFrom(c)
}

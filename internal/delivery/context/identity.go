package context

import (
	"context"

	"newsguard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key under which the authenticated caller is stored.
const KeyIdentity ContextKey = "identity"

// WithIdentity returns a new context carrying the authenticated caller.
func WithIdentity(ctx context.Context, identity *usecase.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentity returns the authenticated caller stored by the session middleware.
func GetIdentity(ctx context.Context) (*usecase.Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(*usecase.Identity)

	return identity, ok && identity != nil
}

// SetIdentity stores the caller on the echo context and on the request's context.Context.
func SetIdentity(c echo.Context, identity *usecase.Identity) {
	c.Set(string(KeyIdentity), identity)
	req := c.Request()
	c.SetRequest(req.WithContext(WithIdentity(req.Context(), identity)))
}

// IdentityFrom reads the caller from the echo context first, then from the request context.
func IdentityFrom(c echo.Context) (*usecase.Identity, bool) {
	if identity, ok := c.Get(string(KeyIdentity)).(*usecase.Identity); ok && identity != nil {
		return identity, true
	}

	return GetIdentity(c.Request().Context())
}

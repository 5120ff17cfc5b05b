package handler

import (
	"log/slog"
	"net/http"
	"time"

	"newsguard/config"
	"newsguard/internal/delivery/api/middleware"
	"newsguard/internal/delivery/api/response"
	domainerrors "newsguard/internal/domain/errors"
	"newsguard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves signup, login, me and logout.
type AuthHandler struct {
	authUC       usecase.AuthUsecase
	cookieName   string
	cookieSecure bool
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:       params.AuthUC,
		cookieName:   params.Config.Auth.CookieName,
		cookieSecure: params.Config.SecureCookie(),
		logger:       params.Logger,
	}
}

// SignupRequest represents the request body for creating an account.
// Formats and lengths are checked by the usecase after trimming.
type SignupRequest struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup handles account creation and sets the session cookie.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, result.Token)

	return response.Session(c, http.StatusCreated, "Signup successful", result.User, result.Token)
}

// Login handles credential checks and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("malformed request body")
	}

	result, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, result.Token)

	return response.Session(c, http.StatusOK, "Login successful", result.User, result.Token)
}

// Me returns the caller's account.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	user, err := h.authUC.Me(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.User(c, user)
}

// Logout clears the session cookie. The token itself stays valid until it expires.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.cookie("", -1))

	return response.SuccessWithMessage(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(h.cookie(token, int(h.authUC.SessionTTL()/time.Second)))
}

func (h *AuthHandler) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	}
}

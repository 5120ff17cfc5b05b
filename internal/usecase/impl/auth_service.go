// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "newsguard/internal/delivery/context"
	"newsguard/internal/domain/entity"
	domainerrors "newsguard/internal/domain/errors"
	"newsguard/internal/domain/repository"
	"newsguard/internal/domain/service"
	"newsguard/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minPasswordLength = 6
	// bcrypt only reads the first 72 bytes and rejects longer input.
	maxPasswordBytes  = 72
	minNameLength     = 2
	maxNameLength     = 50
	minUsernameLength = 3
	maxUsernameLength = 30
)

// emailCheck validates addresses after normalization.
//
//nolint:gochecknoglobals
var emailCheck = validator.New()

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates the account and opens a session for it.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthResult, error) {
	user, err := validateSignup(input)
	if err != nil {
		return nil, err
	}

	existing, err := srv.userRepo.FindByUsernameOrEmail(ctx, user.Username, user.Email)
	switch {
	case err == nil && existing != nil:
		srv.log(ctx).Info("Signup rejected, identifier taken", slog.String("username", user.Username))

		return nil, domainerrors.ErrUserAlreadyExists
	case err != nil && !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	user.PasswordHash = hash

	// A concurrent signup can still win the unique index; Create reports it as ErrUserAlreadyExists.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	srv.log(ctx).Info("User signed up", slog.String("userID", user.ID.String()))

	return srv.openSession(user)
}

// Login verifies the credentials. Unknown usernames and wrong passwords are
// reported identically and cost the same bcrypt work.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	username := entity.NormalizeUsername(input.Username)
	if username == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Username & password required")
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.hasher.Equalize(input.Password)
		srv.log(ctx).Info("Login failed", slog.String("reason", "unknown user"))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login failed", slog.String("reason", "password mismatch"), slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.openSession(user)
}

// Me returns the caller's account without the digest.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*usecase.UserView, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current user")
	}

	return usecase.NewUserView(user), nil
}

// Authenticate maps token failures onto the session errors and re-checks that
// the user still exists.
func (srv *authService) Authenticate(ctx context.Context, token string) (*usecase.Identity, error) {
	if token == "" {
		return nil, domainerrors.ErrTokenMissing
	}

	claim, err := srv.tokenService.Verify(token)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claim.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrStaleSession
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve session user")
	}

	identity := usecase.NewIdentity(user)

	return &identity, nil
}

func (srv *authService) SessionTTL() time.Duration {
	return srv.tokenService.TTL()
}

func (srv *authService) openSession(user *entity.User) (*usecase.AuthResult, error) {
	token, err := srv.tokenService.Issue(service.TokenClaim{
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.AuthResult{
		User:  usecase.NewIdentity(user),
		Token: token,
	}, nil
}

// validateSignup applies the account rules and returns the user to create.
func validateSignup(input *usecase.SignupInput) (*entity.User, error) {
	user := &entity.User{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Username:  entity.NormalizeUsername(input.Username),
		Email:     entity.NormalizeEmail(input.Email),
	}

	if user.FirstName == "" || user.LastName == "" || user.Username == "" || user.Email == "" ||
		input.Password == "" || input.ConfirmPassword == "" {
		return nil, domainerrors.ErrValidationFailed
	}
	if !runesBetween(user.FirstName, minNameLength, maxNameLength) {
		return nil, domainerrors.ErrInvalidInput.WithMessage("First name must be 2-50 characters").WithDetails("firstName")
	}
	if !runesBetween(user.LastName, minNameLength, maxNameLength) {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Last name must be 2-50 characters").WithDetails("lastName")
	}
	if !runesBetween(user.Username, minUsernameLength, maxUsernameLength) {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Username must be 3-30 characters").WithDetails("username")
	}
	if err := emailCheck.Var(user.Email, "email"); err != nil {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Email is invalid").WithDetails("email")
	}
	if utf8.RuneCountInString(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Password must be at least 6 characters")
	}
	if len(input.Password) > maxPasswordBytes {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Password must be at most 72 bytes").WithDetails("password")
	}
	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Passwords do not match")
	}

	return user, nil
}

func runesBetween(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(s)

	return n >= lo && n <= hi
}

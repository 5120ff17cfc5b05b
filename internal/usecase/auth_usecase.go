// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"newsguard/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	FirstName       string
	LastName        string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// Identity is the authenticated caller as seen by handlers. It never carries the digest.
type Identity struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// UserView is the full outward representation of an account.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthResult is returned by signup and login.
type AuthResult struct {
	User  Identity
	Token string
}

// NewIdentity projects a user onto its public identity.
func NewIdentity(user *entity.User) Identity {
	return Identity{ID: user.ID, Username: user.Username, Email: user.Email}
}

// NewUserView projects a user onto its outward view.
func NewUserView(user *entity.User) *UserView {
	return &UserView{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// AuthUsecase defines account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthResult, error)
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*UserView, error)

	// Authenticate verifies a session token and re-resolves its user.
	Authenticate(ctx context.Context, token string) (*Identity, error)

	// SessionTTL is the lifetime of issued tokens, used for the cookie max-age.
	SessionTTL() time.Duration
}

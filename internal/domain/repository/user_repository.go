// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"newsguard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their normalized username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByUsernameOrEmail returns the first user holding either identifier.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	// A unique violation on username or email yields domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error
}

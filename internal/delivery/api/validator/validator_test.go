package validator

import (
	"testing"

	domainerrors "newsguard/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
}

func TestValidator_Valid(t *testing.T) {
	assert.NoError(t, New().Validate(&sample{Username: "alice", Email: "alice@example.com"}))
}

func TestValidator_MissingFields(t *testing.T) {
	err := New().Validate(&sample{Username: "alice"})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "All fields are required", appErr.Message())
	assert.Equal(t, "email", appErr.Details())
}

func TestValidator_RuleViolations(t *testing.T) {
	err := New().Validate(&sample{Username: "al", Email: "not-an-email"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Username must be at least 3 characters", appErr.Message())
	assert.Equal(t, "username must be at least 3 characters; email must be a valid email address", appErr.Details())
}

// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"newsguard/config"
	"newsguard/internal/domain/service"
	"newsguard/internal/errors"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int

	// equalizeDigest is a digest of a random value at the same cost, compared
	// against when the account does not exist.
	equalizeDigest []byte
}

// NewBcryptHasher builds the hasher with the cost from auth.bcryptCost.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	return NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost; zero means bcrypt.DefaultCost.
func NewBcryptHasherWithCost(cost int) (service.PasswordHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	equalizeDigest, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cost)
	if err != nil {
		return nil, errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return &bcryptHasher{cost: cost, equalizeDigest: equalizeDigest}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(digest), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *bcryptHasher) Equalize(password string) {
	_ = bcrypt.CompareHashAndPassword(h.equalizeDigest, []byte(password))
}

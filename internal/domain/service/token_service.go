package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrTokenExpired is returned by Verify when the token is past its exp claim.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid covers bad signatures, unexpected algorithms and malformed payloads.
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenClaim is the identity carried by a session token.
type TokenClaim struct {
	UserID    uuid.UUID
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue signs a token for the user. IssuedAt and ExpiresAt are set by the service.
	Issue(claim TokenClaim) (string, error)

	// Verify checks signature, algorithm and expiry and returns the embedded claim.
	Verify(token string) (*TokenClaim, error)

	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the account that owns classification records.
// PasswordHash is a bcrypt digest and must never leave the service boundary;
// outward representations are built by the usecase layer.
type User struct {
	ID           uuid.UUID // Immutable identifier assigned on signup.
	FirstName    string
	LastName     string
	Username     string // Stored lower-cased and trimmed, unique.
	Email        string // Stored lower-cased and trimmed, unique.
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins the first and last name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// NormalizeUsername returns the canonical form used for storage and lookup.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// NormalizeEmail returns the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

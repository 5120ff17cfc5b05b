// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a digest.
	Check(password, hash string) bool

	// Equalize performs the same work as a failed Check without a stored digest,
	// so lookups of unknown accounts take as long as wrong passwords.
	Equalize(password string)
}

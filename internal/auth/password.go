// Package auth provides password hashing and JWT token handling for the
// Travel Planner API. Passwords are bcrypt digests; tokens are HS256 JWTs
// carrying the user id as the subject claim.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// defaultCost is the bcrypt work factor used in production.
const defaultCost = 12

// PasswordHasher hashes and verifies passwords with bcrypt.
// The cost is injectable so tests can use bcrypt.MinCost and stay fast.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a PasswordHasher with the production cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: defaultCost}
}

// NewPasswordHasherWithCost returns a PasswordHasher with a custom cost.
// Intended for tests (use bcrypt.MinCost); not for production.
func NewPasswordHasherWithCost(cost int) *PasswordHasher {
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt digest of plaintext. The digest embeds its own
// salt and cost, so it can be stored as-is.
// bcrypt silently truncates inputs over 72 bytes; reject them instead.
func (p *PasswordHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", fmt.Errorf("auth: password must be 72 bytes or fewer")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash.
// Returns a non-nil error on mismatch; the comparison is constant-time.
func (p *PasswordHasher) Verify(hash, plaintext string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return fmt.Errorf("auth: invalid password")
		}
		return fmt.Errorf("auth: comparing password hash: %w", err)
	}
	return nil
}

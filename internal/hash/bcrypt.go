// Package hash provides one-way password hashing for credential storage.
package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/lmarques/auth-server/internal/model"
)

// cost is the bcrypt work factor. Tunable at build time only.
const cost = 10

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt implements PasswordHasher using bcrypt with a per-call random salt.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a Bcrypt hasher with the fixed work factor.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: cost}
}

// Hash returns the bcrypt hash of password. The salt is generated per call,
// so two hashes of the same password differ.
func (b *Bcrypt) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare reports whether password matches the stored hash. A mismatch is
// not an error; only malformed hash input is.
func (b *Bcrypt) Compare(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}
	return false, fmt.Errorf("failed to compare password: %w", err)
}

// Package cryptox implements credential hashing for stored passwords.
//
// Hashes are produced with bcrypt: the output string embeds the algorithm
// identifier, the cost parameter and a per-call random salt, so a later
// verification needs nothing but the stored string itself. The same
// plaintext therefore never hashes to the same value twice.
package cryptox

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = bcrypt.DefaultCost

// BcryptHasher derives and verifies bcrypt password hashes with a fixed
// cost. The zero value uses bcrypt's own default cost.
type BcryptHasher struct {
	Cost int
}

func (h *BcryptHasher) cost() int {
	if h.Cost == 0 {
		return DefaultCost
	}
	return h.Cost
}

// Hash derives a salted one-way hash from the plaintext password.
// An error here (RNG failure, invalid cost) means the credential could
// not be derived at all and the request must fail.
func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost())
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(b), nil
}

// Check reports whether the plaintext password matches the stored hash.
func (h *BcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

package credential

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost factor used in production.
const DefaultCost = 12

// Hasher produces and verifies one-way hashes for secrets. The same primitive
// serves passwords and confirmation tokens; each hash carries its own salt.
type Hasher interface {
	Hash(secret string) (string, error)
	Verify(secret, hashed string) bool
}

// BcryptHasher implements Hasher on bcrypt. bcrypt embeds a per-value random
// salt in the output and compares digests in constant time, so verification
// cost does not depend on where a mismatch occurs.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost. Costs outside bcrypt's
// supported range fall back to DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a salted one-way hash from the secret.
func (h *BcryptHasher) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether the secret matches the stored hash.
func (h *BcryptHasher) Verify(secret, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(secret)) == nil
}

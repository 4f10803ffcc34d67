// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 10

// Hasher produces salted one-way digests of plaintext passwords.
type Hasher struct {
	cost  int
	dummy string
}

// New creates a Hasher with the given bcrypt cost; a non-positive cost selects DefaultCost.
func New(cost int) *Hasher {
	if cost <= 0 {
		cost = DefaultCost
	}
	h := &Hasher{cost: cost}
	// An unusable digest at the same cost, so a lookup miss costs as much as a real compare.
	h.dummy, _ = h.Hash(uuid.NewString())
	return h
}

// Hash returns the bcrypt digest of plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches digest.
// bcrypt compares in constant time; a malformed digest is a mismatch.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// Dummy returns a digest no password matches, computed at the hasher's cost.
// Verifying against it takes as long as verifying a stored digest.
func (h *Hasher) Dummy() string {
	return h.dummy
}

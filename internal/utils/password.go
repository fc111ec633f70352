package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword computes the bcrypt hash of password at the given cost.
// A cost below bcrypt.MinCost falls back to bcrypt.DefaultCost.
//
// The resulting string is self-describing: it embeds the cost and the random
// per-call salt, so the same password produces a different hash on every call.
//
// Returns an error only when bcrypt itself rejects the input (e.g. the
// password exceeds 72 bytes or the cost is above bcrypt.MaxCost). Such an
// error at startup-probe time means the hasher is misconfigured and the
// process must not serve traffic.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
//
// It returns false on any mismatch, including a malformed or truncated hash
// string: bcrypt surfaces those as errors and they are swallowed here so the
// check fails closed instead of panicking or leaking parse details.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

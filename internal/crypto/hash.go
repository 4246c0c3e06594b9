package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor. Cost 10 keeps registration latency in
// the tens of milliseconds while remaining expensive for offline brute force.
const hashCost = 10

// HashPassword hashes a password with bcrypt. The salt is generated per call,
// so two hashes of the same password never compare equal as strings.
func HashPassword(password string) (string, error) {
	if len(password) > 72 {
		// bcrypt silently truncates input beyond 72 bytes; reject instead.
		return "", fmt.Errorf("password exceeds 72 bytes")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether a password matches a stored bcrypt hash.
// The comparison is constant-time inside bcrypt. A malformed stored hash
// reads as a mismatch rather than an error — a corrupt row must fail the
// login, not crash it.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt digest from the given plaintext
// password. cost selects the bcrypt work factor; passing 0 (or any value
// below bcrypt.MinCost) falls back to bcrypt.DefaultCost.
//
// The function holds no shared state and is safe for concurrent use.
// A hashing failure is always surfaced as an error, never as an empty
// digest.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether password matches the stored bcrypt
// digest. A mismatch returns (false, nil); any other comparison failure
// (e.g. a malformed digest) is returned as an error so that callers never
// interpret a hashing failure as a successful match.
func VerifyPassword(password, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("error comparing password with digest: %w", err)
}

package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const DefaultPasswordCost = 12

// HashPassword returns the bcrypt hash stored for a new user. Costs outside
// bcrypt's accepted range fall back to DefaultPasswordCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches storedHash. A malformed hash
// is a mismatch, not an error.
func VerifyPassword(password string, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}

package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt cost 10. The salt is generated per call and embedded in the
// resulting hash string.
const _passwordCost = bcrypt.DefaultCost

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	if len(password) == 0 {
		return "", errors.New("password is empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), _passwordCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// ComparePassword reports whether the plaintext password matches the
// stored hash. Mismatched credentials return false, never an error.
func ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

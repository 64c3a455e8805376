package utils

import (
	"meetpoll-api/core/config"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted one-way digest of the participant password.
// The plaintext is never stored.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), config.Get().BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// ComparePassword reports whether candidate hashes to the stored digest.
func ComparePassword(hash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}

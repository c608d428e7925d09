package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor the rest of the system was seeded with.
const bcryptCost = 10

// HashPassword generates a salted bcrypt hash. The salt is random per call,
// so hashing the same password twice yields different records.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordHash compares plaintext against a stored bcrypt record.
// A malformed stored hash is treated as a non-match, never an error.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

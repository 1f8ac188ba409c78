package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/kmuju/bank_portal_app/internal/apperrors"
)

// bcrypt only consumes the first 72 bytes of its input, so longer passwords
// are rejected up front rather than silently truncated.
const maxPasswordBytes = 72

// HashPassword derives the bcrypt hash stored in the users table.
func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", fmt.Errorf("%w: password must be at most %d bytes", apperrors.ErrValidation, maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash reports whether the plaintext password matches the stored
// bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

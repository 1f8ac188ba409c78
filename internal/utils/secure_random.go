package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateAccountNumber generates a cryptographically random numeric account
// number of the given digit length. The first digit is never zero.
func GenerateAccountNumber(digits int) (string, error) {
	if digits <= 0 {
		return "", fmt.Errorf("digits must be positive")
	}
	first, err := rand.Int(rand.Reader, big.NewInt(9))
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	out := fmt.Sprintf("%d", first.Int64()+1)
	for i := 1; i < digits; i++ {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		out += fmt.Sprintf("%d", d.Int64())
	}
	return out, nil
}

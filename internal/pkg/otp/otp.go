package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Generator defines the contract for producing one-time passcodes.
type Generator interface {
	// Generate returns a new random code.
	Generate() (string, error)
}

// NumericGenerator produces fixed-length numeric codes from a
// cryptographically secure source.
type NumericGenerator struct {
	digits int
}

// NewNumeric constructs a NumericGenerator.
//
// If digits is not between 4 and 10, it falls back to 6 digits.
func NewNumeric(digits int) *NumericGenerator {
	if digits < 4 || digits > 10 {
		digits = 6
	}

	return &NumericGenerator{digits: digits}
}

// Generate returns a zero-padded numeric code.
func (g *NumericGenerator) Generate() (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(g.digits)), nil)

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", g.digits, n), nil
}

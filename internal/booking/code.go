package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// codeSuffixMax bounds the random suffix at 8 digits. Wide enough that a
// collision within a month is negligible; the unique index on booking_code
// is the actual correctness guarantee, not this generator.
var codeSuffixMax = big.NewInt(100_000_000)

// GenerateBookingCode produces a customer-facing code like BK20261108312945,
// composed of a fixed prefix, the year and month of creation, and a random
// zero-padded numeric suffix.
func GenerateBookingCode(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, codeSuffixMax)
	if err != nil {
		return "", fmt.Errorf("failed to generate booking code suffix: %w", err)
	}
	return fmt.Sprintf("BK%04d%02d%08d", now.Year(), int(now.Month()), n.Int64()), nil
}

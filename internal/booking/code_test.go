package booking

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBookingCode(t *testing.T) {
	now := time.Date(2025, 11, 1, 14, 30, 0, 0, time.UTC)

	code, err := GenerateBookingCode(now)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^BK202511\d{8}$`), code)
	assert.Len(t, code, 16)
}

func TestGenerateBookingCodeVariesAcrossCalls(t *testing.T) {
	now := time.Date(2025, 11, 1, 14, 30, 0, 0, time.UTC)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateBookingCode(now)
		require.NoError(t, err)
		seen[code] = true
	}

	// 100 draws from an 8-digit space; a collision here would be suspicious
	// but is not impossible, so only require that codes are not constant.
	assert.Greater(t, len(seen), 1)
}

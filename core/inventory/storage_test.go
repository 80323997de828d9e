package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseStorageGBKnownFixtures(t *testing.T) {
	cases := []struct {
		token string
		want  float64
	}{
		{"1TB", 1024},
		{"1GB", 1},
		{"500MB", 500.0 / 1024},
		{"1024KB", 1.0 / 1024},
		{"0B", 0},
		{"", 0},
		{"garbage", 0},
		{"2.5GB", 2.5},
		{"1.2TB", 1228.8},
	}

	for _, tc := range cases {
		got := ParseStorageGB(tc.token)
		assert.InDelta(t, tc.want, got.InexactFloat64(), 1e-9, "token %q", tc.token)
	}
}

func TestParseStorageGBRejectsNonMatchingTokens(t *testing.T) {
	// unit match is case-sensitive with no space before the unit
	assert.True(t, ParseStorageGB("1tb").IsZero())
	assert.True(t, ParseStorageGB("1 GB").IsZero())
	assert.True(t, ParseStorageGB("123").IsZero())
	assert.True(t, ParseStorageGB("GB").IsZero())
	assert.True(t, ParseStorageGB("1PB").IsZero())
}

func TestParseStorageGBExactBinaryConversions(t *testing.T) {
	assert.True(t, ParseStorageGB("2TB").Equal(decimal.NewFromInt(2048)))
	assert.True(t, ParseStorageGB("512MB").Equal(decimal.NewFromFloat(0.5)))
}

func TestParseStorageGBIdempotent(t *testing.T) {
	first := ParseStorageGB("1.2TB")
	second := ParseStorageGB("1.2TB")
	assert.True(t, first.Equal(second))
}

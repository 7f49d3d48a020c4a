package numeric

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"plain integer", "12", "12", true},
		{"plain decimal", "1234.56", "1234.56", true},
		{"currency and thousands", "$1,234.56", "1234.56", true},
		{"currency only", "$2.50", "2.5", true},
		{"thousands only", "12,345", "12345", true},
		{"surrounding whitespace", "  42.00  ", "42", true},
		{"negative", "-3.25", "-3.25", true},
		{"embedded in text", "approx 17.5 units", "17.5", true},
		{"zero", "0.00", "0", true},
		{"empty", "", "", false},
		{"whitespace only", "   ", "", false},
		{"no digits", "N/A", "", false},
		{"dashes", "--", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
					"Normalize(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

// Formatted currency strings must normalize to the value obtained by
// stripping "$" and "," and parsing directly.
func TestNormalize_CurrencyGrid(t *testing.T) {
	for _, c := range []struct {
		formatted string
		plain     string
	}{
		{"$1,234.56", "1234.56"},
		{"$999,999.99", "999999.99"},
		{"$0.01", "0.01"},
		{"$12.00", "12.00"},
		{"$1,000,000.00", "1000000.00"},
	} {
		got, ok := Normalize(c.formatted)
		require.True(t, ok, c.formatted)
		assert.True(t, got.Equal(decimal.RequireFromString(c.plain)))
	}
}

// Normalize is idempotent on its own output's string representation.
func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"$1,234.56", "10", "0.5", "-7.25", "  $3.80 "}
	for i := 0; i < 50; i++ {
		inputs = append(inputs, fmt.Sprintf("$%.2f", gofakeit.Price(0.01, 99999)))
	}

	for _, in := range inputs {
		first, ok := Normalize(in)
		require.True(t, ok, in)

		second, ok := Normalize(first.String())
		require.True(t, ok, in)
		assert.True(t, first.Equal(second), "re-normalizing %q changed %s to %s", in, first, second)
	}
}

func TestNormalize_NonNumericNeverZero(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := gofakeit.LetterN(uint(1 + i%12))
		if _, ok := Normalize(s); ok {
			t.Fatalf("Normalize(%q) unexpectedly succeeded", s)
		}
	}
}

func TestNormalizeFirst(t *testing.T) {
	d, ok := NormalizeFirst([]string{"$2.50", "garbage"})
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("2.5")))

	_, ok = NormalizeFirst(nil)
	assert.False(t, ok)
}

func TestNormalizePositive(t *testing.T) {
	_, ok := NormalizePositive("0")
	assert.False(t, ok, "zero quantity must be rejected")

	_, ok = NormalizePositive("0.00")
	assert.False(t, ok, "zero price must be rejected")

	_, ok = NormalizePositive("-5")
	assert.False(t, ok)

	d, ok := NormalizePositive("10")
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.NewFromInt(10)))
}

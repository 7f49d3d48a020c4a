// Package numeric provides tolerant conversion of raw document values
// (quantities, unit prices) into exact decimals. Vendor documents mix
// "$1,234.56", "1234.56" and bare integers; a single normalizer avoids
// per-vendor numeric code duplicated across extractors.
package numeric

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Characters stripped before token extraction: whitespace, thousands
	// separators and currency markers.
	noiseRe = regexp.MustCompile(`[\s,$]`)

	// First contiguous signed-decimal token in the cleaned string.
	tokenRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
)

// Normalize converts a raw cell or capture value into a decimal.
// It strips currency markers, commas and whitespace, extracts the first
// numeric token and parses it. The second return value is false when no
// token is present or parsing fails; callers treat that as "field
// missing" — Normalize never substitutes zero for an invalid value.
func Normalize(raw string) (decimal.Decimal, bool) {
	cleaned := noiseRe.ReplaceAllString(strings.TrimSpace(raw), "")
	token := tokenRe.FindString(cleaned)
	if token == "" {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// NormalizeFirst unwraps a multi-valued cell to its first element and
// normalizes it. Table backends occasionally return a cell as a list of
// fragments; only the leading fragment carries the value.
func NormalizeFirst(values []string) (decimal.Decimal, bool) {
	if len(values) == 0 {
		return decimal.Decimal{}, false
	}
	return Normalize(values[0])
}

// NormalizePositive normalizes and additionally requires a value
// strictly greater than zero. Malformed matches routinely capture zero
// or blank numeric remnants from adjacent text; strict positivity is
// the filter against such false positives.
func NormalizePositive(raw string) (decimal.Decimal, bool) {
	d, ok := Normalize(raw)
	if !ok || !d.IsPositive() {
		return decimal.Decimal{}, false
	}
	return d, true
}

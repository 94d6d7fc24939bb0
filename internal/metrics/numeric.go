package metrics

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Provider payloads encode amounts as decimal strings and counts as
// integer strings. The aggregator is a best-effort summarizer, not a
// validator: malformed values parse to zero, never to an error.

// parseDecimal parses a USD amount string, returning zero when the field
// is absent or malformed.
func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseInt parses an integer count string, returning 0 when the field is
// absent or malformed.
func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// scaledBalance converts a raw integer balance string into token units
// by shifting the decimal point left by the token's decimals.
func scaledBalance(balance string, decimals int32) decimal.Decimal {
	return parseDecimal(balance).Shift(-decimals)
}

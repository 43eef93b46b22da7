// Package core provides the shopping domain types and money helpers.
//
// Prices are kept as float64 on the records; sums go through
// shopspring/decimal so that month totals do not drift.
package core

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the display prefix used when none is configured.
const DefaultCurrency = "R$"

// ParseAmount converts a non-negative decimal string to a float64.
//
// Both dot (4.50) and comma (4,50) separators are accepted. Signs, exponents
// and anything other than digits and a single separator are rejected.
//
// Examples:
//   ParseAmount("5")     -> 5, nil
//   ParseAmount("4,5")   -> 4.5, nil
//   ParseAmount("-1")    -> 0, ErrNegativeValue
//   ParseAmount("1.2.3") -> 0, ErrInvalidNumber
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidNumber
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "-") {
		return 0, ErrNegativeValue
	}
	s = strings.TrimPrefix(s, "+")
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidNumber
	}
	intPart, fracPart := parts[0], ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" && fracPart == "" {
		return 0, ErrInvalidNumber
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidNumber
		}
	}
	s = intPart
	if fracPart != "" {
		s += "." + fracPart
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return d.InexactFloat64(), nil
}

// ParseQuantity converts a non-negative integer string to a quantity.
func ParseQuantity(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		return 0, ErrNegativeValue
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return uint32(v), nil
}

// LineTotal returns price * qty as an exact decimal.
func LineTotal(price float64, qty uint32) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(qty)))
}

// FormatAmount renders an amount with exactly two decimals, half away from zero.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

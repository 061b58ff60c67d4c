// Package core holds the expense domain model: records, dates, amounts and
// the statistics derived from them.
//
// This file contains amount parsing. Amounts are kept as exact decimals so
// that sums do not drift the way float accumulation does.
package core

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount bounds. Formatting a decimal materialises every digit implied by its
// exponent, so "1e2000000000" must never get past parsing.
const (
	maxAmountText   = 40
	maxAmountDigits = 20
	minAmountExp    = -8
	maxAmountExp    = 12
)

// ErrAmountOutOfRange rejects amounts too large or too precise to be money.
var ErrAmountOutOfRange = errors.New("amount is out of range")

// ParseAmount converts a textual decimal into an amount.
//
// Both "12.50" and "12,50" are accepted, as is exponent notation coming from
// JSON numbers ("1e2"). Zero is allowed; negative values are rejected.
//
// Examples:
//
//	ParseAmount("12.5")  -> 12.5, nil
//	ParseAmount("12,50") -> 12.5, nil
//	ParseAmount("-1")    -> 0, ErrNegativeAmount
//	ParseAmount("abc")   -> 0, ErrInvalidAmount
//	ParseAmount("1e30")  -> 0, ErrAmountOutOfRange
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrMissingAmount
	}
	if len(s) > maxAmountText {
		return decimal.Zero, ErrAmountOutOfRange
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if exp := d.Exponent(); exp < minAmountExp || exp > maxAmountExp || d.NumDigits() > maxAmountDigits {
		return decimal.Zero, ErrAmountOutOfRange
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return d, nil
}

// Package currency parses and formats monetary amounts.
package currency

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCode is used when no currency is configured.
const DefaultCode = "USD"

// MaxAmount is the largest amount a single invoice may carry.
var MaxAmount = decimal.New(1, 12)

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(-math.MaxInt64)
)

// Format renders amount with the grapheme and separators of the ISO currency
// code, e.g. Format(1234.5, "USD") == "$1,234.50". Amounts whose minor units
// overflow an int64 are clamped to ±math.MaxInt64 minor units.
func Format(amount decimal.Decimal, code string) string {
	cur := lookup(code)
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	switch {
	case minor.GreaterThan(maxMinor):
		minor = maxMinor
	case minor.LessThan(minMinor):
		minor = minMinor
	}
	return cur.Formatter().Format(minor.IntPart())
}

// Valid reports whether code is a currency known to go-money.
func Valid(code string) bool {
	return money.GetCurrency(strings.ToUpper(strings.TrimSpace(code))) != nil
}

func lookup(code string) *money.Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || money.GetCurrency(code) == nil {
		code = DefaultCode
	}
	return money.New(0, code).Currency()
}

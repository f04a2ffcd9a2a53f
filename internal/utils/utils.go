package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RoundTo rounds x to the given number of decimal places, half away
// from zero. Matches the rounding the venue applies to prices.
func RoundTo(x float64, decimals int32) float64 {
	f, _ := decimal.NewFromFloat(x).Round(decimals).Float64()
	return f
}

// TickDecimals returns the number of decimal places a tick size string
// carries, e.g. "0.01" -> 2.
func TickDecimals(tickSize string) int32 {
	i := strings.IndexByte(tickSize, '.')
	if i == -1 {
		return 0
	}
	return int32(len(tickSize) - i - 1)
}

// ShiftToRaw converts a human amount to a raw integer string by shifting
// the decimal point right and flooring the remainder. Flooring is
// deliberate: the raw amount must never overstate what the maker owes.
func ShiftToRaw(x float64, decimals int32) string {
	return decimal.NewFromFloat(x).Shift(decimals).Floor().String()
}

package utils

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/shopspring/decimal"
)

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		decimals int32
		want     float64
	}{
		{"no-op below precision", 0.5, 2, 0.5},
		{"half rounds up", 0.555, 2, 0.56},
		{"truncating tail", 0.5549, 2, 0.55},
		{"tick precision one", 0.55, 1, 0.6},
		{"whole number", 2.0, 4, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td.Cmp(t, RoundTo(tt.x, tt.decimals), tt.want)
		})
	}
}

func TestTickDecimals(t *testing.T) {
	tests := []struct {
		tickSize string
		want     int32
	}{
		{"0.1", 1},
		{"0.01", 2},
		{"0.001", 3},
		{"0.0001", 4},
		{"1", 0},
	}

	for _, tt := range tests {
		td.Cmp(t, TickDecimals(tt.tickSize), tt.want, "tick size %s", tt.tickSize)
	}
}

func TestShiftToRaw(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		decimals int32
		want     string
	}{
		{"shares at 2 decimals", 2.0, 2, "200"},
		{"cost at 4 decimals", 2.0, 4, "20000"},
		{"floors residual fraction", 1.23456, 2, "123"},
		{"sub-cent cost", 0.0001, 4, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td.Cmp(t, ShiftToRaw(tt.x, tt.decimals), tt.want)
		})
	}
}

func TestRoundToIsIdempotent(t *testing.T) {
	prices := []float64{0.1, 0.5, 0.55, 0.555, 0.5555, 0.99, 1.0}

	for _, p := range prices {
		for _, decimals := range []int32{1, 2, 3, 4} {
			rounded := RoundTo(p, decimals)
			td.Cmp(t, RoundTo(rounded, decimals), rounded, "price %v at %d decimals", p, decimals)
		}
	}
}

func TestShiftToRawRoundTrips(t *testing.T) {
	// A price representable at the shift precision must survive the raw
	// conversion losslessly: nothing may be floored away, and shifting the
	// raw integer back must land on the exact price. Guards against float
	// artifacts sneaking in at higher precisions.
	prices := []float64{0.1, 0.5, 0.55, 0.555, 0.5555, 0.99, 1.0, 0.0001}

	for _, p := range prices {
		for _, decimals := range []int32{1, 2, 3, 4} {
			rounded := RoundTo(p, decimals)
			raw := ShiftToRaw(rounded, decimals)

			parsed, err := decimal.NewFromString(raw)
			td.CmpNoError(t, err, "raw %q from price %v at %d decimals", raw, p, decimals)
			td.CmpTrue(t, parsed.IsInteger(), "raw %q must be an integer", raw)

			back, _ := parsed.Shift(-decimals).Float64()
			td.Cmp(t, back, rounded, "price %v at %d decimals", p, decimals)
		}
	}
}

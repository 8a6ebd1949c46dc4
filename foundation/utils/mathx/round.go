// File: round.go
// Title: Float and Integer Rounding
// Description: Round-half-to-even on the exact binary value of a float, the
//              semantics calculator results are rounded with.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-02
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: Bound negative integer precision

package mathx

import "math"

const (
	// maxRoundPlaces is the largest precision that can still change a float64
	maxRoundPlaces = 323

	// minRoundPlaces is the smallest precision below which every float64 rounds to zero
	minRoundPlaces = -308

	// minIntRoundPlaces is the smallest precision below which every int64 rounds to zero
	minIntRoundPlaces = -19
)

// RoundValue rounds value to precision decimal places, ties to even. The
// tie test uses the exact binary value, so RoundValue(2.675, 2) is 2.67
// because 2.675 is stored as 2.67499999.... Negative precision rounds to
// tens, hundreds and so on. NaN and ±Inf are returned unchanged and the
// sign of zero is kept.
func RoundValue(value float64, precision int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value == 0 {
		return value
	}
	if precision > maxRoundPlaces {
		return value
	}
	if precision < minRoundPlaces {
		return math.Copysign(0, value)
	}

	rounded := NewDecimalFromFloat(value).Round(precision, RoundingModeHalfEven).Float64()
	if rounded == 0 {
		return math.Copysign(0, value)
	}
	return rounded
}

// RoundInt rounds an integer to precision decimal places. Integers are
// unchanged for precision >= 0; negative precision rounds half to even
// to a multiple of 10^-precision. Results beyond the int64 range saturate;
// use RoundIntExact to detect that case.
func RoundInt(value int64, precision int) int64 {
	rounded, ok := RoundIntExact(value, precision)
	if ok {
		return rounded
	}
	if value < 0 {
		return math.MinInt64
	}
	return math.MaxInt64
}

// RoundIntExact is RoundInt that reports false when the rounded value does
// not fit into an int64.
func RoundIntExact(value int64, precision int) (int64, bool) {
	if precision >= 0 {
		return value, true
	}
	if precision < minIntRoundPlaces {
		return 0, true
	}

	rounded, err := NewDecimalFromInt(value).Round(precision, RoundingModeHalfEven).Int64()
	if err != nil {
		return 0, false
	}
	return rounded, true
}

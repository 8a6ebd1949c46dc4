// Package mathx provides exact decimal rounding and angle conversion for mCALC.
//
// Package: mathx
// Title: Extended Mathematical Operations
// Description: Exact rational decimal rounding with five modes, float
//              rounding with half-to-even semantics on the exact binary value,
//              and angle unit conversion. These are the utility functions the
//              calculators use for post-processing and trigonometry.
// Author: msto63
// Version: v0.4.0
// Created: 2026-09-28
// Modified: 2026-10-17
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with decimal arithmetic
// - 2026-10-02 v0.2.0: RoundValue, RoundInt and AngleToRadians
// - 2026-10-08 v0.3.0: Exact decimal strings, removed business helpers
// - 2026-10-17 v0.4.0: Decimal reduced to rounding, bounded RoundInt
//
// # Overview
//
// Rounding a float64 to n decimal places cannot be done reliably with
// math.Round(x*10^n)/10^n: the multiplication itself rounds. RoundValue
// converts the float to its exact rational value, rounds that with
// Decimal.Round and converts back, so ties are decided on the value the
// float actually holds:
//
//	mathx.RoundValue(2.675, 2)  // 2.67 (2.675 is 2.67499999... in binary)
//	mathx.RoundValue(0.125, 2)  // 0.12 (exact tie, rounds to even)
//	mathx.RoundValue(1234.5, -2) // 1200
//
// # Decimal
//
// Decimal wraps math/big.Rat and is immutable. It exists to round exactly:
// Round supports half-up, half-even, half-down, up and down, and negative
// places round to tens, hundreds and so on.
//
//	d := mathx.NewDecimalFromFloat(0.125)
//	d.Round(2, mathx.RoundingModeHalfUp)   // 0.13
//	d.Round(2, mathx.RoundingModeHalfEven) // 0.12
//
// RoundInt and RoundIntExact round integers; a precision below -19 rounds
// every int64 to zero without computing the power of ten.
//
// # Angles
//
// AngleToRadians accepts "degree" (the default when the unit is empty) and
// "gradian". Other units fail with CodeInvalidUnit.
//
//	rad, err := mathx.AngleToRadians(180, mathx.UnitDegree) // math.Pi
package mathx

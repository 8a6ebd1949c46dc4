// File: decimal.go
// Title: Exact Decimal Rounding
// Description: Exact rational decimal values on top of math/big. Rounding
//              works on the exact value, so a float converted with
//              NewDecimalFromFloat rounds the way its binary representation
//              dictates (2.675 is stored as 2.67499999... and rounds down).
// Author: msto63
// Version: v0.4.0
// Created: 2026-09-28
// Modified: 2026-10-17
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with core decimal operations
// - 2026-10-02 v0.2.0: Exact rounding for all five modes, negative places
// - 2026-10-08 v0.3.0: Exact String() for terminating decimals, removed pooling
// - 2026-10-17 v0.4.0: Reduced to rounding; arithmetic and parsing removed

package mathx

import (
	"math/big"
	"strings"

	mdwerror "github.com/msto63/mCALC/foundation/core/error"
)

// RoundingMode defines how decimal numbers should be rounded
type RoundingMode int

const (
	// RoundingModeHalfUp rounds ties away from zero (commercial rounding)
	RoundingModeHalfUp RoundingMode = iota

	// RoundingModeHalfEven rounds ties to the nearest even digit (banker's rounding)
	RoundingModeHalfEven

	// RoundingModeHalfDown rounds ties toward zero
	RoundingModeHalfDown

	// RoundingModeUp always rounds away from zero
	RoundingModeUp

	// RoundingModeDown always rounds toward zero (truncation)
	RoundingModeDown
)

// String returns the name of the rounding mode
func (m RoundingMode) String() string {
	switch m {
	case RoundingModeHalfUp:
		return "half-up"
	case RoundingModeHalfEven:
		return "half-even"
	case RoundingModeHalfDown:
		return "half-down"
	case RoundingModeUp:
		return "up"
	case RoundingModeDown:
		return "down"
	default:
		return "unknown"
	}
}

// maxStringDigits bounds the fractional digits of non-terminating decimals
const maxStringDigits = 16

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

// Decimal represents an exact rational number that can be rounded to a
// number of decimal places. The zero value is 0.
type Decimal struct {
	value *big.Rat
}

// NewDecimalFromInt creates a new Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: new(big.Rat).SetInt64(i)}
}

// NewDecimalFromFloat creates a Decimal holding the exact binary value of f.
// f must be finite.
func NewDecimalFromFloat(f float64) Decimal {
	return Decimal{value: new(big.Rat).SetFloat64(f)}
}

func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// Round rounds d to the given number of decimal places using mode.
// Negative places round to tens, hundreds and so on.
func (d Decimal) Round(places int, mode RoundingMode) Decimal {
	scale := pow10(places)

	scaled := new(big.Rat).Set(d.rat())
	if places >= 0 {
		scaled.Mul(scaled, new(big.Rat).SetInt(scale))
	} else {
		scaled.Quo(scaled, new(big.Rat).SetInt(scale))
	}

	num, den := scaled.Num(), scaled.Denom()
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))

	if r.Sign() != 0 && roundsAway(q, r, den, mode) {
		if num.Sign() < 0 {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}

	result := new(big.Rat).SetInt(q)
	if places >= 0 {
		result.Quo(result, new(big.Rat).SetInt(scale))
	} else {
		result.Mul(result, new(big.Rat).SetInt(scale))
	}
	return Decimal{value: result}
}

// roundsAway decides whether the truncated quotient q with remainder r
// (over den) moves one step away from zero.
func roundsAway(q, r, den *big.Int, mode RoundingMode) bool {
	switch mode {
	case RoundingModeUp:
		return true
	case RoundingModeDown:
		return false
	}

	twice := new(big.Int).Abs(r)
	twice.Lsh(twice, 1)
	cmp := twice.Cmp(den)

	switch mode {
	case RoundingModeHalfUp:
		return cmp >= 0
	case RoundingModeHalfDown:
		return cmp > 0
	default: // RoundingModeHalfEven
		if cmp != 0 {
			return cmp > 0
		}
		return new(big.Int).Abs(q).Bit(0) == 1
	}
}

// pow10 returns 10^|n|
func pow10(n int) *big.Int {
	exp := new(big.Int).Abs(big.NewInt(int64(n)))
	return exp.Exp(bigTen, exp, nil)
}

// String returns the decimal representation of d. Terminating decimals are
// printed exactly; others are cut to 16 fractional digits.
func (d Decimal) String() string {
	r := d.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	digits, exact := terminatingDigits(r.Denom())
	if !exact || digits > 1000 {
		digits = maxStringDigits
	}
	return trimZeros(r.FloatString(digits))
}

// terminatingDigits reports how many fractional digits den = 2^a·5^b needs
// and whether den has that form at all.
func terminatingDigits(den *big.Int) (int, bool) {
	rest := new(big.Int).Set(den)
	twos := int(rest.TrailingZeroBits())
	rest.Rsh(rest, uint(twos))

	five := big.NewInt(5)
	mod := new(big.Int)
	fives := 0
	for {
		quo, m := new(big.Int).QuoRem(rest, five, mod)
		if m.Sign() != 0 {
			break
		}
		rest = quo
		fives++
	}

	if rest.Cmp(bigOne) != 0 {
		return 0, false
	}
	if twos > fives {
		return twos, true
	}
	return fives, true
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// Float64 returns the float64 nearest to d
func (d Decimal) Float64() float64 {
	f, _ := d.rat().Float64()
	return f
}

// Int64 returns the integer part of d. It fails when the value does not fit
// into an int64.
func (d Decimal) Int64() (int64, error) {
	r := d.rat()
	intPart := new(big.Int).Quo(r.Num(), r.Denom())

	if !intPart.IsInt64() {
		return 0, mdwerror.New("value out of int64 range").
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("mathx.Decimal.Int64").
			WithDetail("value", intPart.String())
	}
	return intPart.Int64(), nil
}

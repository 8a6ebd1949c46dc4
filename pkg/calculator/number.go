// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     calculator
// Description: Number type with integer/float tracking
// Author:      Mike Stoffels
// Created:     2026-10-01
// License:     MIT
// ============================================================================

package calculator

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/mCALC/foundation/core/error"
	"github.com/msto63/mCALC/foundation/utils/mathx"
)

// Kind tells whether a Number holds an integer or a float
type Kind int

const (
	KindInt Kind = iota
	KindFloat
)

// String returns the kind name
func (k Kind) String() string {
	if k == KindFloat {
		return "float"
	}
	return "int"
}

// Number is an operand or result. Integer arithmetic stays integral for
// addition, subtraction and multiplication and falls back to float on
// int64 overflow. Division and math functions always produce floats.
// The zero value is the integer 0.
type Number struct {
	kind Kind
	i    int64
	f    float64
}

// Int returns an integer Number
func Int(v int64) Number {
	return Number{kind: KindInt, i: v}
}

// Float returns a float Number
func Float(v float64) Number {
	return Number{kind: KindFloat, f: v}
}

// ParseNumber parses an integer literal as an integer and anything else
// strconv.ParseFloat accepts as a float. Integer literals beyond the int64
// range become floats.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeError(err) {
		return Number{}, mdwerror.New("invalid number").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("calculator.ParseNumber").
			WithDetail("input", s)
	}
	return Float(f), nil
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

// Kind returns the kind of n
func (n Number) Kind() Kind { return n.kind }

// IsInt reports whether n holds an integer
func (n Number) IsInt() bool { return n.kind == KindInt }

// IsFloat reports whether n holds a float
func (n Number) IsFloat() bool { return n.kind == KindFloat }

// Int64 returns the integer value and true when n is an integer
func (n Number) Int64() (int64, bool) {
	if n.kind == KindInt {
		return n.i, true
	}
	return 0, false
}

// Float64 returns n as a float64
func (n Number) Float64() float64 {
	if n.kind == KindInt {
		return float64(n.i)
	}
	return n.f
}

// IsZero reports whether n equals zero (including -0.0)
func (n Number) IsZero() bool {
	if n.kind == KindInt {
		return n.i == 0
	}
	return n.f == 0
}

// Equal compares numerically, so Int(4) equals Float(4.0)
func (n Number) Equal(m Number) bool {
	if n.kind == KindInt && m.kind == KindInt {
		return n.i == m.i
	}
	return n.Float64() == m.Float64()
}

// ToFloat returns n as a float Number
func (n Number) ToFloat() Number {
	if n.kind == KindFloat {
		return n
	}
	return Float(float64(n.i))
}

// Add returns n + m
func (n Number) Add(m Number) Number {
	if n.kind == KindInt && m.kind == KindInt {
		sum := n.i + m.i
		if (n.i >= 0) == (m.i >= 0) && (sum >= 0) != (n.i >= 0) {
			return Float(bigFloat(new(big.Int).Add(big.NewInt(n.i), big.NewInt(m.i))))
		}
		return Int(sum)
	}
	return Float(n.Float64() + m.Float64())
}

// Sub returns n - m
func (n Number) Sub(m Number) Number {
	if n.kind == KindInt && m.kind == KindInt {
		diff := n.i - m.i
		if (m.i > 0 && diff > n.i) || (m.i < 0 && diff < n.i) {
			return Float(bigFloat(new(big.Int).Sub(big.NewInt(n.i), big.NewInt(m.i))))
		}
		return Int(diff)
	}
	return Float(n.Float64() - m.Float64())
}

// Mul returns n * m
func (n Number) Mul(m Number) Number {
	if n.kind == KindInt && m.kind == KindInt {
		if n.i == 0 || m.i == 0 {
			return Int(0)
		}
		prod := n.i * m.i
		overflow := prod/m.i != n.i ||
			(n.i == -1 && m.i == math.MinInt64) ||
			(m.i == -1 && n.i == math.MinInt64)
		if overflow {
			return Float(bigFloat(new(big.Int).Mul(big.NewInt(n.i), big.NewInt(m.i))))
		}
		return Int(prod)
	}
	return Float(n.Float64() * m.Float64())
}

// Quo returns n / m as a float. Integer quotients are correctly rounded.
// A zero divisor yields ±Inf or NaN; callers check for zero first.
func (n Number) Quo(m Number) Number {
	if n.kind == KindInt && m.kind == KindInt && m.i != 0 {
		q, _ := new(big.Rat).SetFrac(big.NewInt(n.i), big.NewInt(m.i)).Float64()
		return Float(q)
	}
	return Float(n.Float64() / m.Float64())
}

// Round rounds n to precision decimal places, ties to even. Integers stay
// integers and are only changed by negative precision.
func (n Number) Round(precision int) Number {
	if n.kind == KindInt {
		if rounded, ok := mathx.RoundIntExact(n.i, precision); ok {
			return Int(rounded)
		}
		return Float(mathx.RoundValue(float64(n.i), precision))
	}
	return Float(mathx.RoundValue(n.f, precision))
}

// String formats integers plainly and floats in shortest form that always
// shows a fraction or an exponent: 4.0, 18.13, 1e+16, inf, nan.
func (n Number) String() string {
	if n.kind == KindInt {
		return strconv.FormatInt(n.i, 10)
	}
	return formatFloat(n.f)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func bigFloat(i *big.Int) float64 {
	f, _ := new(big.Float).SetInt(i).Float64()
	return f
}

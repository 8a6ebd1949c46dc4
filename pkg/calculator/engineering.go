// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     calculator
// Description: Engineering calculator with hard failures
// Author:      Mike Stoffels
// Created:     2026-10-01
// License:     MIT
// ============================================================================

package calculator

import (
	"math"

	"github.com/msto63/mCALC/foundation/utils/mathx"
)

// Engineering extends Basic with square root, power, logarithms and
// trigonometry. Add, Subtract and Multiply are the Basic operations,
// sentinels included. Divide is replaced by a variant that returns errors.
type Engineering struct {
	*Basic
}

// NewEngineering creates an engineering calculator with the given defaults
func NewEngineering(opts ...Option) *Engineering {
	return &Engineering{Basic: NewBasic(opts...)}
}

// Divide divides the first argument by every following one. It fails with
// ErrInsufficientArguments for fewer than two arguments and with
// ErrDivisionByZero as soon as a divisor is zero.
func (e *Engineering) Divide(args []Number, opts ...Option) (Number, error) {
	c := e.begin("divide", args, opts)
	if len(args) < 2 {
		return Number{}, c.fail(insufficientArguments("calculator.Engineering.Divide", len(args)))
	}

	quotient, zeroAt := foldDivide(args)
	if zeroAt >= 0 {
		return Number{}, c.fail(divisionByZero("calculator.Engineering.Divide", zeroAt))
	}
	return c.finish(quotient), nil
}

// SquareRoot returns the square root of x. Negative x fails with
// ErrInvalidArgument.
func (e *Engineering) SquareRoot(x Number, opts ...Option) (Number, error) {
	c := e.begin("sqrt", []Number{x}, opts)
	if x.Float64() < 0 {
		return Number{}, c.fail(invalidArgument("calculator.Engineering.SquareRoot", "input must not be negative", x))
	}
	return c.finish(Float(math.Sqrt(x.Float64()))), nil
}

// Power returns x**y. The domain is not checked; a negative base with a
// fractional exponent yields NaN.
func (e *Engineering) Power(x, y Number, opts ...Option) Number {
	c := e.begin("pow", []Number{x, y}, opts)
	return c.finish(Float(math.Pow(x.Float64(), y.Float64())))
}

// Log returns the logarithm of x to the base set with WithBase (10 unless
// configured). x <= 0, base <= 0 and base == 1 fail with ErrInvalidArgument.
func (e *Engineering) Log(x Number, opts ...Option) (Number, error) {
	c := e.begin("log", []Number{x}, opts)
	const op = "calculator.Engineering.Log"

	if x.Float64() <= 0 {
		return Number{}, c.fail(invalidArgument(op, "input must be greater than zero", x))
	}

	base := c.settings.base
	if base <= 0 || base == 1 {
		return Number{}, c.fail(invalidArgument(op, "base must be positive and not 1", Float(base)))
	}

	return c.finish(Float(logBase(x.Float64(), base))), nil
}

func logBase(x, base float64) float64 {
	switch base {
	case 2:
		return math.Log2(x)
	case 10:
		return math.Log10(x)
	case math.E:
		return math.Log(x)
	default:
		return math.Log(x) / math.Log(base)
	}
}

// Ln returns the natural logarithm of x. x <= 0 fails with
// ErrInvalidArgument.
func (e *Engineering) Ln(x Number, opts ...Option) (Number, error) {
	c := e.begin("ln", []Number{x}, opts)
	if x.Float64() <= 0 {
		return Number{}, c.fail(invalidArgument("calculator.Engineering.Ln", "input must be greater than zero", x))
	}
	return c.finish(Float(math.Log(x.Float64()))), nil
}

// Sin returns the sine of x, read in the configured angle unit
func (e *Engineering) Sin(x Number, opts ...Option) Number {
	return e.trig("sin", math.Sin, x, opts)
}

// Cos returns the cosine of x, read in the configured angle unit
func (e *Engineering) Cos(x Number, opts ...Option) Number {
	return e.trig("cos", math.Cos, x, opts)
}

// Tan returns the tangent of x, read in the configured angle unit. Poles
// are not special-cased.
func (e *Engineering) Tan(x Number, opts ...Option) Number {
	return e.trig("tan", math.Tan, x, opts)
}

func (e *Engineering) trig(op string, fn func(float64) float64, x Number, opts []Option) Number {
	c := e.begin(op, []Number{x}, opts)
	return c.finish(Float(fn(toRadians(x.Float64(), c.settings.angleUnit))))
}

// toRadians converts degree and gradian angles. Settings only ever hold
// the units ParseAngleUnit returns.
func toRadians(x float64, unit AngleUnit) float64 {
	switch unit {
	case Degree, Gradian:
		if rad, err := mathx.AngleToRadians(x, string(unit)); err == nil {
			return rad
		}
	}
	return x
}

// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     calculator
// Description: Calculator settings and functional options
// Author:      Mike Stoffels
// Created:     2026-10-01
// License:     MIT
// ============================================================================

package calculator

import (
	"strings"

	mdwerror "github.com/msto63/mCALC/foundation/core/error"
	mdwlog "github.com/msto63/mCALC/foundation/core/log"
)

// AngleUnit is the unit trigonometric operations read their argument in
type AngleUnit string

const (
	Radian  AngleUnit = "radian"
	Degree  AngleUnit = "degree"
	Gradian AngleUnit = "gradian"
)

// DefaultLogBase is the logarithm base used when none is configured
const DefaultLogBase = 10

// ParseAngleUnit accepts radian, degree and gradian plus their common
// abbreviations. An empty string means radian.
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "radian", "radians", "rad":
		return Radian, nil
	case "degree", "degrees", "deg":
		return Degree, nil
	case "gradian", "gradians", "grad", "gon":
		return Gradian, nil
	default:
		return "", mdwerror.New("unknown angle unit").
			WithCode(mdwerror.CodeInvalidUnit).
			WithOperation("calculator.ParseAngleUnit").
			WithDetail("unit", s)
	}
}

// Settings holds the defaults a calculator applies to every operation.
// A nil precision means results are not rounded.
type Settings struct {
	precision  *int
	forceFloat bool
	angleUnit  AngleUnit
	base       float64
	logger     *mdwlog.Logger
}

// Option configures Settings. The same options are used for construction
// and for per-call overrides.
type Option func(*Settings)

// WithPrecision rounds results to precision decimal places
func WithPrecision(precision int) Option {
	return func(s *Settings) {
		p := precision
		s.precision = &p
	}
}

// WithoutRounding disables rounding, overriding an instance precision
func WithoutRounding() Option {
	return func(s *Settings) {
		s.precision = nil
	}
}

// WithForceFloat converts results to floats after rounding
func WithForceFloat(force bool) Option {
	return func(s *Settings) {
		s.forceFloat = force
	}
}

// WithAngleUnit sets the unit Sin, Cos and Tan read their argument in.
// Abbreviations are normalized as in ParseAngleUnit. A unit ParseAngleUnit
// rejects leaves the current unit unchanged; validate user input with
// ParseAngleUnit first.
func WithAngleUnit(unit AngleUnit) Option {
	return func(s *Settings) {
		if parsed, err := ParseAngleUnit(string(unit)); err == nil {
			s.angleUnit = parsed
		}
	}
}

// WithBase sets the logarithm base used by Log
func WithBase(base float64) Option {
	return func(s *Settings) {
		s.base = base
	}
}

// WithLogger enables debug logging of operations. A nil logger is silent.
func WithLogger(logger *mdwlog.Logger) Option {
	return func(s *Settings) {
		s.logger = logger
	}
}

func newSettings(opts []Option) Settings {
	s := Settings{
		angleUnit: Radian,
		base:      DefaultLogBase,
	}
	return s.resolve(opts)
}

// resolve applies per-call options to a copy of s
func (s Settings) resolve(opts []Option) Settings {
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// Precision returns the rounding precision and whether rounding is enabled
func (s Settings) Precision() (int, bool) {
	if s.precision == nil {
		return 0, false
	}
	return *s.precision, true
}

// ForceFloat reports whether results are converted to floats
func (s Settings) ForceFloat() bool { return s.forceFloat }

// AngleUnit returns the angle unit for trigonometric operations
func (s Settings) AngleUnit() AngleUnit { return s.angleUnit }

// Base returns the logarithm base
func (s Settings) Base() float64 { return s.base }

// finish applies the post-processing every operation shares: round to the
// resolved precision, then convert to float if requested.
func (s Settings) finish(raw Number) Number {
	result := raw
	if s.precision != nil {
		result = result.Round(*s.precision)
	}
	if s.forceFloat {
		result = result.ToFloat()
	}
	return result
}

func (s Settings) fields(op string) mdwlog.Fields {
	fields := mdwlog.Fields{
		"operation":   op,
		"force_float": s.forceFloat,
	}
	if s.precision != nil {
		fields["precision"] = *s.precision
	}
	return fields
}

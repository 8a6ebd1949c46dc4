// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     evaluator
// Description: Request parsing for "op args... key=value" lines
// Author:      Mike Stoffels
// Created:     2026-10-04
// License:     MIT
// ============================================================================

package evaluator

import (
	"fmt"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/mCALC/foundation/core/error"
	"github.com/msto63/mCALC/pkg/calculator"
)

// Request is one parsed operation with its per-call overrides. Nil
// overrides fall back to the calculator defaults.
type Request struct {
	Op   string
	Args []calculator.Number

	Precision  *int
	NoRound    bool
	ForceFloat *bool
	Unit       string
	Base       *float64
	Strict     bool
}

// Options converts the overrides into calculator options
func (r Request) Options() ([]calculator.Option, error) {
	var opts []calculator.Option

	if r.NoRound {
		opts = append(opts, calculator.WithoutRounding())
	} else if r.Precision != nil {
		opts = append(opts, calculator.WithPrecision(*r.Precision))
	}
	if r.ForceFloat != nil {
		opts = append(opts, calculator.WithForceFloat(*r.ForceFloat))
	}
	if r.Unit != "" {
		unit, err := calculator.ParseAngleUnit(r.Unit)
		if err != nil {
			return nil, err
		}
		opts = append(opts, calculator.WithAngleUnit(unit))
	}
	if r.Base != nil {
		opts = append(opts, calculator.WithBase(*r.Base))
	}
	return opts, nil
}

// ParseLine parses "op arg... key=value..." into a Request. Options may
// appear anywhere after the operation name.
func ParseLine(line string) (Request, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Request{}, parseError("empty input", line)
	}

	req := Request{Op: strings.ToLower(fields[0])}
	for _, field := range fields[1:] {
		if key, value, ok := strings.Cut(field, "="); ok {
			if err := req.SetOption(key, value); err != nil {
				return Request{}, err
			}
			continue
		}

		n, err := calculator.ParseNumber(field)
		if err != nil {
			return Request{}, err
		}
		req.Args = append(req.Args, n)
	}
	return req, nil
}

// SetOption applies one key=value override
func (r *Request) SetOption(key, value string) error {
	switch strings.ToLower(key) {
	case "precision", "p":
		p, err := strconv.Atoi(value)
		if err != nil {
			return optionError(key, value, "integer")
		}
		r.Precision = &p
	case "round":
		on, err := parseSwitch(value)
		if err != nil {
			return optionError(key, value, "on|off")
		}
		r.NoRound = !on
	case "float", "f":
		force, err := parseSwitch(value)
		if err != nil {
			return optionError(key, value, "true|false")
		}
		r.ForceFloat = &force
	case "unit":
		if _, err := calculator.ParseAngleUnit(value); err != nil {
			return err
		}
		r.Unit = value
	case "base":
		base, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return optionError(key, value, "number")
		}
		r.Base = &base
	case "strict":
		strict, err := parseSwitch(value)
		if err != nil {
			return optionError(key, value, "true|false")
		}
		r.Strict = strict
	default:
		return mdwerror.New(fmt.Sprintf("unknown option %q", key)).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("evaluator.SetOption").
			WithDetail("option", key)
	}
	return nil
}

func parseSwitch(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	default:
		return strconv.ParseBool(value)
	}
}

func optionError(key, value, want string) error {
	return mdwerror.New(fmt.Sprintf("invalid value %q for option %s, want %s", value, key, want)).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("evaluator.SetOption").
		WithDetail("option", key).
		WithDetail("value", value)
}

func parseError(message, line string) error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("evaluator.ParseLine").
		WithDetail("input", line)
}

// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     evaluator
// Description: Runs parsed requests on the basic and engineering calculators
// Author:      Mike Stoffels
// Created:     2026-10-04
// License:     MIT
// ============================================================================

package evaluator

import (
	"fmt"

	mdwerror "github.com/msto63/mCALC/foundation/core/error"
	"github.com/msto63/mCALC/foundation/utils/mathx"
	"github.com/msto63/mCALC/pkg/calculator"
)

// Outcome is the result of one evaluation: a number or a sentinel string
// from the basic calculator
type Outcome struct {
	Op       string
	Value    calculator.Number
	Sentinel string
}

// IsSentinel reports whether the basic calculator rejected the input
func (o Outcome) IsSentinel() bool {
	return o.Sentinel != ""
}

// String returns the sentinel or the formatted value
func (o Outcome) String() string {
	if o.IsSentinel() {
		return o.Sentinel
	}
	return o.Value.String()
}

// Evaluator dispatches requests. Basic operations run on the basic
// calculator; div with Strict and all other operations run on the
// engineering calculator. Both share the same defaults.
type Evaluator struct {
	basic       *calculator.Basic
	engineering *calculator.Engineering
}

// New creates an evaluator whose calculators use opts as defaults
func New(opts ...calculator.Option) *Evaluator {
	return &Evaluator{
		basic:       calculator.NewBasic(opts...),
		engineering: calculator.NewEngineering(opts...),
	}
}

// EvalLine parses and evaluates one input line
func (e *Evaluator) EvalLine(line string) (Outcome, error) {
	req, err := ParseLine(line)
	if err != nil {
		return Outcome{}, err
	}
	return e.Eval(req)
}

// Eval runs req. Soft failures of the basic calculator are returned as
// sentinel outcomes; everything else that fails returns an error.
func (e *Evaluator) Eval(req Request) (Outcome, error) {
	op, ok := Lookup(req.Op)
	if !ok {
		return Outcome{}, mdwerror.New(fmt.Sprintf("unknown operation %q", req.Op)).
			WithCode(mdwerror.CodeUnknownOperation).
			WithOperation("evaluator.Eval").
			WithDetail("operation", req.Op)
	}
	if !op.accepts(len(req.Args)) {
		return Outcome{}, mdwerror.New(fmt.Sprintf("%s: wrong number of arguments, usage: %s", op.Name, op.Usage)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("evaluator.Eval").
			WithDetail("operation", op.Name).
			WithDetail("arguments", len(req.Args))
	}

	opts, err := req.Options()
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Op: op.Name}
	args := req.Args

	switch op.Name {
	case "add":
		return fromResult(out, e.basic.Add(args, opts...)), nil
	case "sub":
		return fromResult(out, e.basic.Subtract(args, opts...)), nil
	case "mul":
		return fromResult(out, e.basic.Multiply(args, opts...)), nil
	case "div":
		if !req.Strict {
			return fromResult(out, e.basic.Divide(args, opts...)), nil
		}
		out.Value, err = e.engineering.Divide(args, opts...)
	case "sqrt":
		out.Value, err = e.engineering.SquareRoot(args[0], opts...)
	case "pow":
		out.Value = e.engineering.Power(args[0], args[1], opts...)
	case "log":
		out.Value, err = e.engineering.Log(args[0], opts...)
	case "ln":
		out.Value, err = e.engineering.Ln(args[0], opts...)
	case "sin":
		out.Value = e.engineering.Sin(args[0], opts...)
	case "cos":
		out.Value = e.engineering.Cos(args[0], opts...)
	case "tan":
		out.Value = e.engineering.Tan(args[0], opts...)
	case "radians":
		out.Value, err = radians(req)
	case "round":
		out.Value, err = round(args[0], args[1])
	}

	if err != nil {
		return Outcome{}, err
	}
	return out, nil
}

func fromResult(out Outcome, r calculator.Result) Outcome {
	if r.IsSentinel() {
		out.Sentinel = r.Sentinel()
		return out
	}
	out.Value, _ = r.Number()
	return out
}

// radians converts with the utility conversion, which defaults to degrees
// and rejects radian as a source unit
func radians(req Request) (calculator.Number, error) {
	unit := ""
	if req.Unit != "" {
		parsed, err := calculator.ParseAngleUnit(req.Unit)
		if err != nil {
			return calculator.Number{}, err
		}
		unit = string(parsed)
	}

	rad, err := mathx.AngleToRadians(req.Args[0].Float64(), unit)
	if err != nil {
		return calculator.Number{}, err
	}

	result := calculator.Float(rad)
	if req.Precision != nil && !req.NoRound {
		result = result.Round(*req.Precision)
	}
	return result, nil
}

func round(value, precision calculator.Number) (calculator.Number, error) {
	p, ok := precision.Int64()
	if !ok {
		return calculator.Number{}, mdwerror.New("precision must be an integer").
			WithCode(mdwerror.CodeInvalidArgument).
			WithOperation("evaluator.round").
			WithDetail("precision", precision.String())
	}
	return value.Round(int(p)), nil
}

// Settings returns the defaults both calculators were built with
func (e *Evaluator) Settings() calculator.Settings {
	return e.basic.Settings()
}

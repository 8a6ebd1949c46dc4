// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     calculator
// Description: Basic and engineering calculators
// Author:      Mike Stoffels
// Created:     2026-10-01
// License:     MIT
// ============================================================================

// Package calculator provides a basic and an engineering calculator.
//
// Both calculators hold immutable defaults set with functional options.
// Every operation accepts the same options after its operands; they
// override the defaults for that call only:
//
//	calc := calculator.NewBasic(calculator.WithPrecision(2))
//	calc.Add(args)                                   // rounded to 2 places
//	calc.Add(args, calculator.WithoutRounding())     // not rounded
//	calc.Add(args, calculator.WithForceFloat(true))  // rounded, then float
//
// Results are always rounded first and converted to float second.
//
// The two calculators report invalid input differently. Basic returns a
// Result carrying a sentinel string:
//
//	r := calculator.NewBasic().Divide([]calculator.Number{calculator.Int(5), calculator.Int(0)})
//	r.Sentinel() // "Error: division by zero is not allowed."
//
// Engineering replaces Divide with a variant returning an error and adds
// SquareRoot, Power, Log, Ln, Sin, Cos and Tan:
//
//	_, err := calculator.NewEngineering().Divide(args)
//	if errors.Is(err, calculator.ErrDivisionByZero) { ... }
package calculator

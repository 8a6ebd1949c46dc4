// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     calculator
// Description: Error sentinels of the engineering calculator
// Author:      Mike Stoffels
// Created:     2026-10-01
// License:     MIT
// ============================================================================

package calculator

import (
	mdwerror "github.com/msto63/mCALC/foundation/core/error"
)

// Errors returned by the engineering calculator. Returned errors are
// *mdwerror.Error values with operation and details; match them with
// errors.Is.
var (
	ErrInsufficientArguments = mdwerror.Sentinel(mdwerror.CodeInsufficientArguments, "two or more values required")
	ErrDivisionByZero        = mdwerror.Sentinel(mdwerror.CodeDivisionByZero, "division by zero is not allowed")
	ErrInvalidArgument       = mdwerror.Sentinel(mdwerror.CodeInvalidArgument, "invalid argument")
)

func insufficientArguments(op string, got int) error {
	return mdwerror.New("two or more values required").
		WithCode(mdwerror.CodeInsufficientArguments).
		WithOperation(op).
		WithDetail("arguments", got)
}

func divisionByZero(op string, position int) error {
	return mdwerror.New("division by zero is not allowed").
		WithCode(mdwerror.CodeDivisionByZero).
		WithOperation(op).
		WithDetail("position", position)
}

func invalidArgument(op, message string, value Number) error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeInvalidArgument).
		WithOperation(op).
		WithDetail("value", value.String())
}

// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across mCALC. Codes classify every
//              hard failure so callers can match errors without comparing
//              message text.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial code set
// - 2026-10-12 v0.2.0: Calculator codes, removed service codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Calculator
	CodeInsufficientArguments Code = "INSUFFICIENT_ARGUMENTS"
	CodeDivisionByZero        Code = "DIVISION_BY_ZERO"
	CodeInvalidArgument       Code = "INVALID_ARGUMENT"
	CodeInvalidUnit           Code = "INVALID_UNIT"
	CodeUnknownOperation      Code = "UNKNOWN_OPERATION"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInsufficientArguments, CodeDivisionByZero, CodeInvalidArgument, CodeInvalidUnit, CodeUnknownOperation,
		CodeConfigError, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInsufficientArguments, CodeDivisionByZero, CodeInvalidArgument, CodeInvalidUnit, CodeUnknownOperation:
		return "calculation"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c.Category() {
	case "calculation":
		return 1
	case "validation":
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}

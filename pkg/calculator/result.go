// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     calculator
// Description: Operation results of the basic calculator
// Author:      Mike Stoffels
// Created:     2026-10-01
// License:     MIT
// ============================================================================

package calculator

// Sentinel strings the basic calculator returns instead of failing
const (
	SentinelInsufficientArguments = "Error: two or more values required."
	SentinelDivisionByZero        = "Error: division by zero is not allowed."
)

// Result is either a Number or a sentinel string describing a soft failure
type Result struct {
	value    Number
	sentinel string
}

func numberResult(n Number) Result {
	return Result{value: n}
}

func sentinelResult(sentinel string) Result {
	return Result{sentinel: sentinel}
}

// IsSentinel reports whether the operation failed softly
func (r Result) IsSentinel() bool {
	return r.sentinel != ""
}

// Sentinel returns the sentinel string, or "" for numeric results
func (r Result) Sentinel() string {
	return r.sentinel
}

// Number returns the numeric value and false for sentinel results
func (r Result) Number() (Number, bool) {
	if r.IsSentinel() {
		return Number{}, false
	}
	return r.value, true
}

// String returns the sentinel or the formatted number
func (r Result) String() string {
	if r.IsSentinel() {
		return r.sentinel
	}
	return r.value.String()
}

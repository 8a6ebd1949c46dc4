// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     calculator
// Description: Basic calculator with soft failures
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

// Basic provides add, subtract, multiply and divide. Invalid input never
// produces an error; the operation returns a sentinel Result instead.
// A Basic is immutable and safe for concurrent use.
type Basic struct {
	settings Settings
}

// NewBasic creates a basic calculator with the given defaults
func NewBasic(opts ...Option) *Basic {
	return &Basic{settings: newSettings(opts)}
}

// Settings returns the instance defaults
func (b *Basic) Settings() Settings {
	return b.settings
}

// Add returns the sum of args. An empty list sums to 0.
func (b *Basic) Add(args []Number, opts ...Option) Result {
	c := b.begin("add", args, opts)

	sum := Int(0)
	for _, arg := range args {
		sum = sum.Add(arg)
	}
	return c.result(sum)
}

// Subtract subtracts every following argument from the first
func (b *Basic) Subtract(args []Number, opts ...Option) Result {
	c := b.begin("subtract", args, opts)
	if len(args) < 2 {
		return c.sentinel(SentinelInsufficientArguments)
	}

	diff := args[0]
	for _, arg := range args[1:] {
		diff = diff.Sub(arg)
	}
	return c.result(diff)
}

// Multiply returns the product of args, starting from the integer 1
func (b *Basic) Multiply(args []Number, opts ...Option) Result {
	c := b.begin("multiply", args, opts)
	if len(args) < 1 {
		return c.sentinel(SentinelInsufficientArguments)
	}

	product := Int(1)
	for _, arg := range args {
		product = product.Mul(arg)
	}
	return c.result(product)
}

// Divide divides the first argument by every following one. A zero divisor
// anywhere stops the fold and yields SentinelDivisionByZero.
func (b *Basic) Divide(args []Number, opts ...Option) Result {
	c := b.begin("divide", args, opts)
	if len(args) < 2 {
		return c.sentinel(SentinelInsufficientArguments)
	}

	quotient, zeroAt := foldDivide(args)
	if zeroAt >= 0 {
		return c.sentinel(SentinelDivisionByZero)
	}
	return c.result(quotient)
}

// foldDivide returns args[0] / args[1] / ... and the index of the first zero
// divisor, or -1. len(args) must be at least 1.
func foldDivide(args []Number) (Number, int) {
	quotient := args[0]
	for i, arg := range args[1:] {
		if arg.IsZero() {
			return Number{}, i + 1
		}
		quotient = quotient.Quo(arg)
	}
	return quotient, -1
}

// call carries the resolved settings of one operation
type call struct {
	settings Settings
	op       string
	args     []Number
	timer    *mdwlog.Timer
}

func (b *Basic) begin(op string, args []Number, opts []Option) *call {
	c := &call{
		settings: b.settings.resolve(opts),
		op:       op,
		args:     args,
	}
	if c.settings.logger != nil {
		c.timer = c.settings.logger.StartTimer("calculator." + op)
	}
	return c
}

// finish post-processes raw and logs the completed operation
func (c *call) finish(raw Number) Number {
	result := c.settings.finish(raw)
	if c.timer != nil {
		c.timer.
			WithField("args", formatArgs(c.args)).
			WithField("result", result.String()).
			Stop()
	}
	return result
}

func (c *call) result(raw Number) Result {
	return numberResult(c.finish(raw))
}

func (c *call) sentinel(sentinel string) Result {
	if logger := c.settings.logger; logger != nil {
		logger.Debug("calculator."+c.op+" returned sentinel", mdwlog.Fields{
			"args":     formatArgs(c.args),
			"sentinel": sentinel,
		})
	}
	return sentinelResult(sentinel)
}

// fail logs err at debug level and returns it; reporting is up to the caller
func (c *call) fail(err error) error {
	if logger := c.settings.logger; logger != nil {
		logger.Debug("calculator."+c.op+" failed", mdwlog.Fields{
			"args":       formatArgs(c.args),
			"error":      err.Error(),
			"error_code": mdwerror.GetCode(err).String(),
		})
	}
	return err
}

func formatArgs(args []Number) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}

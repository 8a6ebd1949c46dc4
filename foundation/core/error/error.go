// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type carrying a code, severity, operation,
//              details and a stack trace. Errors with the same code match each
//              other under errors.Is, which lets packages export sentinels.
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with contextual errors
// - 2026-10-12 v0.2.0: Sentinel constructor and code based errors.Is matching
// - 2026-10-14 v0.3.0: Stack capture via runtime.CallersFrames

package error

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"
)

// Error is a structured error carrying a code, a severity, the failing
// operation, free-form details and the stack at creation
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	details   map[string]interface{}
	context   string
	operation string

	stackTrace []StackFrame
}

// StackFrame is one captured call site
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

const (
	// MaxErrorChainDepth limits how deep Wrap nests errors
	MaxErrorChainDepth = 15

	// MaxStackFrames limits the captured stack
	MaxStackFrames = 20
)

// newError creates an error with a stack starting at the caller of the
// exported constructor
func newError(message string, cause error) *Error {
	return &Error{
		message:    message,
		cause:      cause,
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		details:    make(map[string]interface{}),
		stackTrace: captureStackTrace(4),
	}
}

// New creates an error with CodeUnknown and medium severity
func New(message string) *Error {
	return newError(message, nil)
}

// Sentinel creates a comparison target for errors.Is. It carries no stack
// trace and matches every *Error with the same code.
func Sentinel(code Code, message string) *Error {
	return &Error{
		message:  message,
		code:     code,
		severity: GetSeverityFromCode(code),
		details:  make(map[string]interface{}),
	}
}

// Wrap adds message in front of err. Code, severity, operation and details
// of a wrapped *Error carry over. Chains deeper than MaxErrorChainDepth are
// flattened into a single message. Wrap(nil, ...) returns nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if depth := chainDepth(err); depth >= MaxErrorChainDepth {
		flat := newError(fmt.Sprintf("%s (chain truncated at depth %d): %s",
			message, MaxErrorChainDepth, rootOf(err).Error()), nil)
		flat.severity = SeverityHigh
		flat.details["truncated"] = true
		flat.details["original_depth"] = depth
		return flat
	}

	wrapped := newError(message, err)

	var inner *Error
	if stderrors.As(err, &inner) {
		wrapped.code = inner.code
		wrapped.severity = inner.severity
		wrapped.operation = inner.operation
		for k, v := range inner.details {
			wrapped.details[k] = v
		}
	}
	return wrapped
}

func chainDepth(err error) int {
	depth := 0
	for ; err != nil && depth < MaxErrorChainDepth*2; err = stderrors.Unwrap(err) {
		depth++
	}
	return depth
}

func rootOf(err error) error {
	for {
		next := stderrors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is e or an *Error with the same known code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t == e || (t.code != CodeUnknown && t.code == e.code)
}

// WithCode sets the code. A severity still at the default medium is
// replaced by the code's default severity.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithContext sets a free-form description of the surrounding situation
func (e *Error) WithContext(context string) *Error {
	e.context = context
	return e
}

// WithOperation names the failing operation, e.g. "calculator.Engineering.Divide"
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Message returns the message without the cause chain
func (e *Error) Message() string { return e.message }

func (e *Error) Code() Code { return e.code }

func (e *Error) Severity() Severity { return e.severity }

func (e *Error) Timestamp() time.Time { return e.timestamp }

func (e *Error) Context() string { return e.context }

func (e *Error) Operation() string { return e.operation }

// Details returns a copy of the details
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// StackTrace returns a copy of the captured stack
func (e *Error) StackTrace() []StackFrame {
	return append([]StackFrame(nil), e.stackTrace...)
}

// RootCause returns the innermost error of the chain
func (e *Error) RootCause() error {
	return rootOf(e)
}

// String returns a multi-line report with one "Key: value" line per
// populated attribute
func (e *Error) String() string {
	var b strings.Builder
	line := func(key, value string) {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(key + ": " + value)
	}

	line("Error", e.message)
	line("Code", e.code.String())
	line("Severity", e.severity.String())
	if !e.timestamp.IsZero() {
		line("Timestamp", e.timestamp.Format(time.RFC3339))
	}
	if e.context != "" {
		line("Context", e.context)
	}
	if e.operation != "" {
		line("Operation", e.operation)
	}
	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = fmt.Sprintf("%s=%v", k, e.details[k])
		}
		line("Details", "{"+strings.Join(pairs, ", ")+"}")
	}
	if e.cause != nil {
		line("Cause", e.cause.Error())
	}
	return b.String()
}

type errorJSON struct {
	Message    string                 `json:"message"`
	Code       Code                   `json:"code"`
	Severity   string                 `json:"severity"`
	Details    map[string]interface{} `json:"details"`
	Timestamp  string                 `json:"timestamp,omitempty"`
	Context    string                 `json:"context,omitempty"`
	Operation  string                 `json:"operation,omitempty"`
	Cause      string                 `json:"cause,omitempty"`
	StackTrace []StackFrame           `json:"stack_trace,omitempty"`
}

// MarshalJSON encodes the error for structured logs
func (e *Error) MarshalJSON() ([]byte, error) {
	out := errorJSON{
		Message:    e.message,
		Code:       e.code,
		Severity:   e.severity.String(),
		Details:    e.details,
		Context:    e.context,
		Operation:  e.operation,
		StackTrace: e.stackTrace,
	}
	if !e.timestamp.IsZero() {
		out.Timestamp = e.timestamp.Format(time.RFC3339)
	}
	if e.cause != nil {
		out.Cause = e.cause.Error()
	}
	return json.Marshal(out)
}

// captureStackTrace records up to MaxStackFrames frames, skipping skip
// frames where 0 is runtime.Callers itself
func captureStackTrace(skip int) []StackFrame {
	pcs := make([]uintptr, MaxStackFrames)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]StackFrame, 0, n)
	for {
		frame, more := frames.Next()
		stack = append(stack, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
	return stack
}

// HasCode reports whether err or any *Error it wraps carries code
func HasCode(err error, code Code) bool {
	var mdwErr *Error
	for stderrors.As(err, &mdwErr) {
		if mdwErr.code == code {
			return true
		}
		err = mdwErr.cause
	}
	return false
}

// GetCode returns the code of the first *Error in err's chain, or CodeUnknown
func GetCode(err error) Code {
	var mdwErr *Error
	if stderrors.As(err, &mdwErr) {
		return mdwErr.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of the first *Error in err's chain, or
// SeverityMedium
func GetSeverity(err error) Severity {
	var mdwErr *Error
	if stderrors.As(err, &mdwErr) {
		return mdwErr.severity
	}
	return SeverityMedium
}

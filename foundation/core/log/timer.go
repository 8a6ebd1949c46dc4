// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it on stop.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-10-08
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Timer measures one operation and logs its duration when stopped. Stop
// and StopWithError only log once.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer starts a timer for operation. Completion is logged at debug
// level unless WithLevel changes it; a nil logger only measures.
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the level of the completion entry
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// IsRunning reports whether the timer has not been stopped yet
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

// Stop logs "<operation> completed" with the duration and returns it.
// Stopping a stopped timer returns 0.
func (t *Timer) Stop() time.Duration {
	elapsed, fields, ok := t.stop()
	if ok && t.logger != nil {
		t.logger.log(t.level, t.operation+" completed", nil, fields)
	}
	return elapsed
}

// StopWithError logs "<operation> failed" at error level with err attached
func (t *Timer) StopWithError(err error) time.Duration {
	elapsed, fields, ok := t.stop()
	if ok && t.logger != nil {
		fields["success"] = false
		t.logger.log(LevelError, t.operation+" failed", err, fields)
	}
	return elapsed
}

func (t *Timer) stop() (time.Duration, Fields, bool) {
	if t.stopped {
		return 0, nil, false
	}
	t.stopped = true

	elapsed := t.Elapsed()
	fields := t.fields.Clone()
	fields["operation"] = t.operation
	fields["duration_ms"] = durationMillis(elapsed)
	return elapsed, fields, true
}

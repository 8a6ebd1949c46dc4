// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: leveled, structured logging with
//              persistent context fields and integration with the mCALC error
//              type. Loggers are immutable apart from their level; With*
//              methods return configured copies.
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-28
// Modified: 2026-10-08
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with structured logging
// - 2026-10-05 v0.2.0: Serialized writes, removed async buffering
// - 2026-10-08 v0.3.0: Atomic level, copy-on-write configuration

package log

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	mdwerror "github.com/msto63/mCALC/foundation/core/error"
)

// Logger writes structured entries to an output. Copies created by the
// With* methods that keep the output also share its write lock, so lines
// from different copies never interleave.
type Logger struct {
	level     *atomic.Int32
	formatter Formatter
	output    io.Writer
	writeMu   *sync.Mutex

	name          string
	correlationID string
	fields        Fields

	enableCaller     bool
	callerSkipFrames int
}

// Config configures NewWithConfig. A nil Output means stderr.
type Config struct {
	Level            Level
	Format           Format
	Output           io.Writer
	Name             string
	EnableCaller     bool
	CallerSkipFrames int
}

// New creates a JSON logger at the default level writing to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatJSON})
}

// NewWithConfig creates a logger from config
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	level := &atomic.Int32{}
	level.Store(int32(config.Level))

	return &Logger{
		level:            level,
		formatter:        GetFormatter(config.Format),
		output:           output,
		writeMu:          &sync.Mutex{},
		name:             config.Name,
		fields:           make(Fields),
		enableCaller:     config.EnableCaller,
		callerSkipFrames: config.CallerSkipFrames,
	}
}

// Discard returns a logger that writes nothing
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelFatal, Output: io.Discard})
}

// with returns a copy of l modified by change. The copy gets its own
// level so SetLevel on it leaves l untouched.
func (l *Logger) with(change func(c *Logger)) *Logger {
	c := *l
	c.level = &atomic.Int32{}
	c.level.Store(l.level.Load())
	c.fields = l.fields.Clone()
	if c.fields == nil {
		c.fields = make(Fields)
	}
	change(&c)
	return &c
}

// WithLevel returns a copy with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	return l.with(func(c *Logger) { c.level.Store(int32(level)) })
}

// WithFormat returns a copy writing in format
func (l *Logger) WithFormat(format Format) *Logger {
	return l.with(func(c *Logger) { c.formatter = GetFormatter(format) })
}

// WithOutput returns a copy writing to output
func (l *Logger) WithOutput(output io.Writer) *Logger {
	return l.with(func(c *Logger) {
		c.output = output
		c.writeMu = &sync.Mutex{}
	})
}

// WithName returns a copy whose entries carry name
func (l *Logger) WithName(name string) *Logger {
	return l.with(func(c *Logger) { c.name = name })
}

// WithField returns a copy that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.with(func(c *Logger) { c.fields[key] = value })
}

// WithFields returns a copy that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	return l.with(func(c *Logger) {
		for k, v := range fields {
			c.fields[k] = v
		}
	})
}

// WithCorrelationID returns a copy tagging entries with correlationID
func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	return l.with(func(c *Logger) { c.correlationID = correlationID })
}

// WithCaller returns a copy that records the calling function. skip drops
// additional frames for logging helpers.
func (l *Logger) WithCaller(skip int) *Logger {
	return l.with(func(c *Logger) {
		c.enableCaller = true
		c.callerSkipFrames = skip
	})
}

func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs at fatal level and exits with status 1
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// Audit logs regardless of the configured level
func (l *Logger) Audit(message string, fields ...Fields) {
	l.log(LevelAudit, message, nil, fields...)
}

// ErrorWithErr logs message at error level with err attached
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs message at warn level with err attached
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs err with its code, severity and details as error_* fields.
// The severity of an *mdwerror.Error selects the level: low → info,
// medium → warn, high and critical → error. Other errors log at error.
func (l *Logger) LogError(err error, fields ...Fields) {
	if err == nil {
		return
	}

	var mdwErr *mdwerror.Error
	if !stderrors.As(err, &mdwErr) {
		l.log(LevelError, err.Error(), err, fields...)
		return
	}

	errFields := Fields{
		"error_code":     mdwErr.Code().String(),
		"error_severity": mdwErr.Severity().String(),
	}
	if op := mdwErr.Operation(); op != "" {
		errFields["error_operation"] = op
	}
	if ctx := mdwErr.Context(); ctx != "" {
		errFields["error_context"] = ctx
	}
	for k, v := range mdwErr.Details() {
		errFields["error_"+k] = v
	}

	l.log(severityLevel(mdwErr.Severity()), err.Error(), err, append([]Fields{errFields}, fields...)...)
}

func severityLevel(s mdwerror.Severity) Level {
	switch s {
	case mdwerror.SeverityLow:
		return LevelInfo
	case mdwerror.SeverityMedium:
		return LevelWarn
	default:
		return LevelError
	}
}

// StartTimer starts a Timer that logs through l
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled reports whether entries at level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.GetLevel())
}

func (l *Logger) GetLevel() Level {
	return Level(l.level.Load())
}

// SetLevel changes the level of l in place
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !level.ShouldLog(l.GetLevel()) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}

	if l.enableCaller {
		if function, file, line, ok := l.caller(); ok {
			entry.WithCaller(function, file, line)
		}
	}

	line, fmtErr := l.formatter.Format(entry)
	if fmtErr != nil {
		return
	}

	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	_, _ = l.output.Write(line)
}

// caller skips itself, log and the public logging method
func (l *Logger) caller() (function, file string, line int, ok bool) {
	pc, file, line, ok := runtime.Caller(3 + l.callerSkipFrames)
	if !ok {
		return "", "", 0, false
	}

	function = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name := fn.Name()
		function = name[strings.LastIndex(name, ".")+1:]
	}
	return function, filepath.Base(file), line, true
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// GetDefault returns the package-level logger
func GetDefault() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the package-level logger
func SetDefault(logger *Logger) {
	defaultLogger.Store(logger)
}

// Debug logs through the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs through the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs through the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs through the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}

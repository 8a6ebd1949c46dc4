// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      Mike Stoffels
// Created:     2026-10-03
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/mCALC/foundation/core/error"
	mdwlog "github.com/msto63/mCALC/foundation/core/log"
	"github.com/msto63/mCALC/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: json, text, console or logfmt
	Format string

	// Output defaults to stderr so results on stdout stay clean
	Output io.Writer

	// CorrelationID tags every entry; empty generates a new one
	CorrelationID string

	// Verbose forces debug level
	Verbose bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// FromConfig builds a LoggerConfig from the log section of the application
// configuration
func FromConfig(name string, cfg config.LogConfig) LoggerConfig {
	lc := DefaultLoggerConfig(name)
	if cfg.Level != "" {
		lc.Level = cfg.Level
	}
	if cfg.Format != "" {
		lc.Format = cfg.Format
	}
	return lc
}

// NewLogger creates a foundation logger tagged with a correlation ID
func NewLogger(cfg LoggerConfig) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, invalid("level", cfg.Level, err)
	}
	if cfg.Verbose {
		level = mdwlog.LevelDebug
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, invalid("format", cfg.Format, err)
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = NewCorrelationID()
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: level <= mdwlog.LevelDebug,
	})

	return logger.WithCorrelationID(correlationID), nil
}

// NewCorrelationID returns a random ID that groups the entries of one run
func NewCorrelationID() string {
	return uuid.NewString()
}

func invalid(key, value string, cause error) error {
	return mdwerror.Wrap(cause, "invalid logger configuration").
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("logging.NewLogger").
		WithDetail("key", key).
		WithDetail("value", value)
}

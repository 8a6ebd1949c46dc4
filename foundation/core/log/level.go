// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering and controlling log output.
//              Each level carries its configuration name, a three letter
//              tag for text output and an ANSI color for the console.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-08
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with standard log levels
// - 2026-10-08 v0.2.0: Level attributes kept in one table

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level
	LevelTrace Level = iota

	// LevelDebug records every calculator operation
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates soft failures such as sentinel results
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError

	// LevelFatal represents errors that terminate the program
	LevelFatal

	// LevelAudit is always logged regardless of the minimum level
	LevelAudit
)

const colorReset = "\033[0m"

type levelInfo struct {
	name    string
	short   string
	color   string
	aliases []string
}

var levels = map[Level]levelInfo{
	LevelTrace: {"trace", "TRC", "\033[37m", []string{"trc"}},
	LevelDebug: {"debug", "DBG", "\033[36m", []string{"dbg"}},
	LevelInfo:  {"info", "INF", "\033[32m", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", "\033[33m", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", "\033[31m", []string{"err"}},
	LevelFatal: {"fatal", "FTL", "\033[35m", []string{"ftl"}},
	LevelAudit: {"audit", "AUD", "\033[34m", []string{"aud"}},
}

// String returns the lowercase configuration name of the level
func (l Level) String() string {
	if info, ok := levels[l]; ok {
		return info.name
	}
	return "unknown"
}

// ShortString returns the three letter tag used by text output
func (l Level) ShortString() string {
	if info, ok := levels[l]; ok {
		return info.short
	}
	return "???"
}

// Color returns the ANSI color code for console output
func (l Level) Color() string {
	if info, ok := levels[l]; ok {
		return info.color
	}
	return colorReset
}

// ShouldLog reports whether an entry at l passes minLevel. Audit entries
// always pass.
func (l Level) ShouldLog(minLevel Level) bool {
	return l == LevelAudit || l >= minLevel
}

// ParseLevel parses a level name or tag, ignoring case. Unknown input
// returns LevelInfo together with a *ParseError.
func ParseLevel(level string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	for l, info := range levels {
		if info.name == name {
			return l, nil
		}
		for _, alias := range info.aliases {
			if alias == name {
				return l, nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports an unknown level or format name
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the level of loggers created by New
func DefaultLevel() Level {
	return LevelInfo
}

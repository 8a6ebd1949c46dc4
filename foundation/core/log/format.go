// File: format.go
// Title: Log Format Definitions
// Description: JSON, text, console and logfmt formatters for log entries.
//              All formatters share one ordering of the entry metadata and
//              print custom fields sorted by key.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-08
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-03 v0.1.1: Stable field order in text and logfmt output
// - 2026-10-08 v0.2.0: Shared metadata handling, NaN-safe JSON values

package log

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Format selects the encoding of log entries
type Format int

const (
	// FormatJSON writes one JSON object per line
	FormatJSON Format = iota

	// FormatText writes compact human-readable lines
	FormatText

	// FormatConsole writes text lines colored by level
	FormatConsole

	// FormatLogfmt writes key=value pairs
	FormatLogfmt
)

var formatNames = map[Format]string{
	FormatJSON:    "json",
	FormatText:    "text",
	FormatConsole: "console",
	FormatLogfmt:  "logfmt",
}

// String returns the configuration name of the format
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat parses a format name, ignoring case. Unknown names return
// FormatJSON together with a *ParseError.
func ParseFormat(format string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(format))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return FormatJSON, &ParseError{Input: format, Type: "format"}
}

// Formatter encodes a single entry including the trailing newline
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the default formatter for format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	case FormatLogfmt:
		return NewLogfmtFormatter()
	default:
		return NewJSONFormatter()
	}
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// JSONFormatter writes entries as JSON objects
type JSONFormatter struct {
	PrettyPrint     bool
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter with RFC 3339 timestamps
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format encodes entry as a JSON object. Errors that marshal themselves
// are added as error_details without their stack trace.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	obj := make(map[string]interface{}, len(entry.Fields)+8)
	for k, v := range entry.Fields {
		obj[k] = jsonSafe(v)
	}

	obj["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	obj["level"] = entry.Level.String()
	obj["message"] = entry.Message
	if entry.Logger != "" {
		obj["logger"] = entry.Logger
	}
	if entry.CorrelationID != "" {
		obj["correlation_id"] = entry.CorrelationID
	}
	if entry.Error != nil {
		obj["error"] = entry.Error.Error()
		if details := errorDetails(entry.Error); details != nil {
			obj["error_details"] = details
		}
	}
	if entry.Caller != nil {
		obj["caller"] = fmt.Sprintf("%s:%d %s", entry.Caller.File, entry.Caller.Line, entry.Caller.Function)
	}
	if entry.Duration > 0 {
		obj["duration_ms"] = durationMillis(entry.Duration)
	}

	var out []byte
	var err error
	if f.PrettyPrint {
		out, err = json.MarshalIndent(obj, "", "  ")
	} else {
		out, err = json.Marshal(obj)
	}
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func errorDetails(err error) map[string]interface{} {
	m, ok := err.(json.Marshaler)
	if !ok {
		return nil
	}
	raw, mErr := m.MarshalJSON()
	if mErr != nil {
		return nil
	}

	var details map[string]interface{}
	if json.Unmarshal(raw, &details) != nil {
		return nil
	}
	delete(details, "stack_trace")
	return details
}

// jsonSafe converts values encoding/json rejects or renders poorly
func jsonSafe(v interface{}) interface{} {
	switch val := v.(type) {
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return strconv.FormatFloat(val, 'g', -1, 64)
		}
	case float32:
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return strconv.FormatFloat(float64(val), 'g', -1, 32)
		}
	}
	return v
}

// TextFormatter writes entries as
//
//	15:04:05 [LVL] {logger} (cid=...) message [k=v ...] error="..." duration=...
type TextFormatter struct {
	TimestampFormat  string
	FullTimestamp    bool
	DisableTimestamp bool
}

// NewTextFormatter creates a text formatter with clock-time timestamps
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format encodes entry as a single text line
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	if !f.DisableTimestamp {
		layout := f.TimestampFormat
		if f.FullTimestamp {
			layout = time.RFC3339
		}
		b.WriteString(entry.Timestamp.Format(layout))
		b.WriteByte(' ')
	}

	b.WriteString("[" + entry.Level.ShortString() + "]")
	if entry.Logger != "" {
		b.WriteString(" {" + entry.Logger + "}")
	}
	if entry.CorrelationID != "" {
		b.WriteString(" (cid=" + entry.CorrelationID + ")")
	}
	b.WriteString(" " + entry.Message)

	if len(entry.Fields) > 0 {
		b.WriteString(" [")
		for i, k := range entry.Fields.Keys() {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%v", k, entry.Fields[k])
		}
		b.WriteByte(']')
	}
	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}
	if entry.Duration > 0 {
		fmt.Fprintf(&b, " duration=%s", entry.Duration)
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// ConsoleFormatter is a TextFormatter that wraps each line in the ANSI
// color of its level
type ConsoleFormatter struct {
	DisableColors bool

	*TextFormatter
}

// NewConsoleFormatter creates a colored console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TextFormatter: NewTextFormatter()}
}

// Format encodes entry as a text line, colored unless DisableColors is set
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	line, err := f.TextFormatter.Format(entry)
	if err != nil || f.DisableColors {
		return line, err
	}
	return []byte(entry.Level.Color() + strings.TrimSuffix(string(line), "\n") + colorReset + "\n"), nil
}

// LogfmtFormatter writes entries as key=value pairs. String field values
// are always quoted.
type LogfmtFormatter struct {
	TimestampFormat string
}

// NewLogfmtFormatter creates a logfmt formatter with RFC 3339 timestamps
func NewLogfmtFormatter() *LogfmtFormatter {
	return &LogfmtFormatter{TimestampFormat: time.RFC3339}
}

// Format encodes entry as one logfmt line
func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "timestamp=%s level=%s message=%q",
		entry.Timestamp.Format(f.TimestampFormat), entry.Level, entry.Message)
	if entry.Logger != "" {
		b.WriteString(" logger=" + entry.Logger)
	}
	if entry.CorrelationID != "" {
		b.WriteString(" correlation_id=" + entry.CorrelationID)
	}

	for _, k := range entry.Fields.Keys() {
		if s, ok := entry.Fields[k].(string); ok {
			fmt.Fprintf(&b, " %s=%q", k, s)
		} else {
			fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
		}
	}
	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}
	if entry.Duration > 0 {
		fmt.Fprintf(&b, " duration_ms=%.3f", durationMillis(entry.Duration))
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

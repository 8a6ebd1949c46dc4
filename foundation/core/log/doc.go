// Package log provides structured logging for mCALC.
//
// Package: log
// Title: mCALC Structured Logging
// Description: Leveled structured logging with JSON, text, console and
//              logfmt output, persistent context fields, correlation IDs and
//              integration with the mCALC error type.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-05
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
// - 2026-10-05 v0.2.0: Serialized writes, removed async buffering
//
// Usage:
//
//	import mdwlog "github.com/msto63/mCALC/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatText,
//		Name:   "calculator",
//	})
//
//	logger.Debug("operation", mdwlog.Fields{"op": "add", "result": "18.13"})
//	logger.LogError(err) // level follows the error severity
//
// Loggers never mutate after construction except through SetLevel; the
// With* methods return independent copies that share the output.
package log

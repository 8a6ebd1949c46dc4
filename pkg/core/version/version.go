// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     version
// Description: Central version management for library and CLI
// Author:      Mike Stoffels
// Created:     2026-10-03
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the mCALC components
const (
	// Library version of pkg/calculator
	Library = "1.0.0"

	// CLI version of cmd/mcalc
	CLI = "1.0.0"
)

// Build metadata, set via -ldflags at release time
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli", "mcalc":
		return CLI
	default:
		return Library
	}
}

// Info returns the multi-line version report printed by "mcalc version"
func Info() string {
	return fmt.Sprintf("mCALC v%s\n"+
		"  Library:    v%s\n"+
		"  Git Commit: %s\n"+
		"  Build Date: %s\n"+
		"  Go Version: %s\n"+
		"  OS/Arch:    %s/%s\n",
		CLI, Library, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     config
// Description: Configuration file discovery
// Author:      Mike Stoffels
// Created:     2026-10-03
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
)

// DiscoveryOptions defines where Discover looks for a configuration file
type DiscoveryOptions struct {
	// Explicit is a path given by the user; when set it must exist
	Explicit string
	// Candidates are tried in order when Explicit is empty
	Candidates []string
}

// DefaultCandidates returns the default search list: MCALC_CONFIG, then
// ./mcalc.toml, ./mcalc.yaml and ~/.config/mcalc/config.toml
func DefaultCandidates() []string {
	candidates := []string{}
	if env, ok := lookup(EnvConfig); ok {
		candidates = append(candidates, env)
	}
	candidates = append(candidates, "mcalc.toml", "mcalc.yaml", "mcalc.yml")
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "mcalc", "config.toml"))
	}
	return candidates
}

// FindConfigFile returns the first existing candidate, or "" if none exists
func FindConfigFile(options DiscoveryOptions) string {
	if options.Explicit != "" {
		return options.Explicit
	}
	for _, path := range options.Candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Discover loads the discovered configuration file, falls back to the
// defaults when there is none, then applies environment overrides and
// validates the result.
func Discover(options DiscoveryOptions) (*Config, error) {
	cfg := Default()

	if path := FindConfigFile(options); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

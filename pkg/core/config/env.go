// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     config
// Description: Environment variable overrides
// Author:      Mike Stoffels
// Created:     2026-10-03
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables read by ApplyEnv
const (
	EnvConfig     = "MCALC_CONFIG"
	EnvPrecision  = "MCALC_PRECISION"
	EnvForceFloat = "MCALC_FORCE_FLOAT"
	EnvAngleUnit  = "MCALC_ANGLE_UNIT"
	EnvLogBase    = "MCALC_LOG_BASE"
	EnvLogLevel   = "MCALC_LOG_LEVEL"
	EnvLogFormat  = "MCALC_LOG_FORMAT"
)

// ApplyEnv overrides configuration values with MCALC_* environment
// variables. MCALC_PRECISION accepts an integer or "none" to disable
// rounding.
func (c *Config) ApplyEnv() error {
	if v, ok := lookup(EnvPrecision); ok {
		switch strings.ToLower(v) {
		case "none", "off":
			c.Calculator.Precision = nil
		default:
			p, err := strconv.Atoi(v)
			if err != nil {
				return invalid(EnvPrecision, v, err)
			}
			c.Calculator.Precision = &p
		}
	}

	if v, ok := lookup(EnvForceFloat); ok {
		force, err := strconv.ParseBool(v)
		if err != nil {
			return invalid(EnvForceFloat, v, err)
		}
		c.Calculator.ForceFloat = force
	}

	if v, ok := lookup(EnvAngleUnit); ok {
		c.Calculator.AngleUnit = v
	}

	if v, ok := lookup(EnvLogBase); ok {
		base, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return invalid(EnvLogBase, v, err)
		}
		c.Calculator.LogBase = base
	}

	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}

	if v, ok := lookup(EnvLogFormat); ok {
		c.Log.Format = v
	}

	return nil
}

// lookup returns a trimmed, non-empty environment value
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

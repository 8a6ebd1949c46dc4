// ============================================================================
// mCALC - Rechner-Bibliothek
// ============================================================================
//
// Package:     config
// Description: Typed configuration for calculator defaults and logging
// Author:      Mike Stoffels
// Created:     2026-10-03
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/mCALC/foundation/core/error"
	mdwlog "github.com/msto63/mCALC/foundation/core/log"
	"github.com/msto63/mCALC/pkg/calculator"
)

// Config holds the complete application configuration
type Config struct {
	Calculator CalculatorConfig `toml:"calculator" yaml:"calculator"`
	Log        LogConfig        `toml:"log" yaml:"log"`

	// path is the file the configuration was loaded from, if any
	path string
}

// CalculatorConfig holds the calculator defaults
type CalculatorConfig struct {
	Precision  *int    `toml:"precision" yaml:"precision"`
	ForceFloat bool    `toml:"force_float" yaml:"force_float"`
	AngleUnit  string  `toml:"angle_unit" yaml:"angle_unit"`
	LogBase    float64 `toml:"log_base" yaml:"log_base"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. The format follows the
// file extension; unknown extensions are read as TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", path)).
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch detectFormat(path) {
	case "yaml":
		err = yaml.Unmarshal(content, &cfg)
	default:
		_, err = toml.Decode(string(content), &cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.path = path
	cfg.applyDefaults()

	return &cfg, nil
}

// detectFormat determines the configuration format from the file extension
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Calculator.AngleUnit == "" {
		c.Calculator.AngleUnit = string(calculator.Radian)
	}
	if c.Calculator.LogBase == 0 {
		c.Calculator.LogBase = calculator.DefaultLogBase
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Path returns the file the configuration was loaded from, or ""
func (c *Config) Path() string {
	return c.path
}

// Validate checks that every value can be used
func (c *Config) Validate() error {
	if _, err := calculator.ParseAngleUnit(c.Calculator.AngleUnit); err != nil {
		return invalid("calculator.angle_unit", c.Calculator.AngleUnit, err)
	}
	if base := c.Calculator.LogBase; base <= 0 || base == 1 {
		return invalid("calculator.log_base", base, nil)
	}
	if _, err := mdwlog.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level, err)
	}
	if _, err := mdwlog.ParseFormat(c.Log.Format); err != nil {
		return invalid("log.format", c.Log.Format, err)
	}
	return nil
}

func invalid(key string, value interface{}, cause error) error {
	message := fmt.Sprintf("invalid value for %s", key)

	var err *mdwerror.Error
	if cause != nil {
		err = mdwerror.Wrap(cause, message)
	} else {
		err = mdwerror.New(message)
	}
	return err.
		WithCode(mdwerror.CodeInvalidConfig).
		WithSeverity(mdwerror.SeverityHigh).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}

// CalculatorOptions converts the calculator section into calculator options.
// The configuration must be valid.
func (c *Config) CalculatorOptions() ([]calculator.Option, error) {
	unit, err := calculator.ParseAngleUnit(c.Calculator.AngleUnit)
	if err != nil {
		return nil, invalid("calculator.angle_unit", c.Calculator.AngleUnit, err)
	}

	opts := []calculator.Option{
		calculator.WithForceFloat(c.Calculator.ForceFloat),
		calculator.WithAngleUnit(unit),
		calculator.WithBase(c.Calculator.LogBase),
	}
	if c.Calculator.Precision != nil {
		opts = append(opts, calculator.WithPrecision(*c.Calculator.Precision))
	}
	return opts, nil
}

// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the mRW configuration type and functionality for
//              loading, parsing, and validating configuration data from
//              TOML and YAML files with environment variable overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mrwerror "github.com/msto63/mRW/foundation/core/error"
	mrwstringx "github.com/msto63/mRW/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "MRW_"

// Config holds the full mRW configuration
type Config struct {
	Calculator CalculatorConfig `toml:"calculator" yaml:"calculator"`
	Log        LogConfig        `toml:"log" yaml:"log"`
	Server     ServerConfig     `toml:"server" yaml:"server"`
}

// CalculatorConfig configures the calculator engine and session
type CalculatorConfig struct {
	// AngleMode is the initial angle mode: "degrees" or "radians"
	AngleMode string `toml:"angle_mode" yaml:"angle_mode"`

	// MaxExpressionLength limits accepted expression length in bytes
	MaxExpressionLength int `toml:"max_expression_length" yaml:"max_expression_length"`

	// HistorySize bounds the in-memory calculation history
	HistorySize int `toml:"history_size" yaml:"history_size"`
}

// LogConfig configures structured logging
type LogConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error
	Level string `toml:"level" yaml:"level"`

	// Format is the output format: json, text, console
	Format string `toml:"format" yaml:"format"`
}

// ServerConfig configures the evaluation gateway
type ServerConfig struct {
	// Address is the listen address of the gateway
	Address string `toml:"address" yaml:"address"`

	// ReadTimeoutSeconds is the HTTP read timeout
	ReadTimeoutSeconds int `toml:"read_timeout_seconds" yaml:"read_timeout_seconds"`

	// WriteTimeoutSeconds is the HTTP write timeout
	WriteTimeoutSeconds int `toml:"write_timeout_seconds" yaml:"write_timeout_seconds"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Calculator: CalculatorConfig{
			AngleMode:           "degrees",
			MaxExpressionLength: 4096,
			HistorySize:         100,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Server: ServerConfig{
			Address:             "127.0.0.1:8420",
			ReadTimeoutSeconds:  15,
			WriteTimeoutSeconds: 15,
		},
	}
}

// Load reads the configuration from a file, applies environment variable
// overrides, and validates the result. The file format is detected from
// the extension (.toml, .yaml, .yml).
func Load(path string) (*Config, error) {
	if mrwstringx.IsBlank(path) {
		return nil, mrwerror.New("configuration path is empty").
			WithCode(mrwerror.CodeMissingConfig)
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mrwerror.Wrap(err, fmt.Sprintf("failed to read configuration file %s", path)).
			WithCode(mrwerror.CodeConfigError).
			WithDetail("path", path)
	}

	cfg := Default()
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, mrwerror.Wrap(err, "failed to parse TOML configuration").
				WithCode(mrwerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, mrwerror.Wrap(err, "failed to parse YAML configuration").
				WithCode(mrwerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads the configuration from path if it exists; otherwise
// it returns defaults with environment overrides applied. A blank path
// always yields defaults.
func LoadOrDefault(path string) (*Config, error) {
	if mrwstringx.IsBlank(path) {
		cfg := Default()
		cfg.applyEnvOverrides()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		cfg.applyEnvOverrides()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return Load(path)
}

// detectFormat determines the configuration format from the file extension
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatTOML, mrwerror.New(fmt.Sprintf("unsupported configuration format: %s", filepath.Ext(path))).
			WithCode(mrwerror.CodeInvalidConfig).
			WithDetail("path", path)
	}
}

// applyEnvOverrides applies MRW_* environment variables over file values
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvPrefix + "ANGLE_MODE"); v != "" {
		c.Calculator.AngleMode = v
	}
	if v := os.Getenv(EnvPrefix + "MAX_EXPRESSION_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Calculator.MaxExpressionLength = n
		}
	}
	if v := os.Getenv(EnvPrefix + "HISTORY_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Calculator.HistorySize = n
		}
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvPrefix + "SERVER_ADDRESS"); v != "" {
		c.Server.Address = v
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch strings.ToLower(c.Calculator.AngleMode) {
	case "degrees", "deg", "radians", "rad":
	default:
		return mrwerror.New(fmt.Sprintf("invalid angle mode: %s", c.Calculator.AngleMode)).
			WithCode(mrwerror.CodeInvalidConfig).
			WithDetail("angle_mode", c.Calculator.AngleMode)
	}

	if c.Calculator.MaxExpressionLength <= 0 {
		return mrwerror.New("max_expression_length must be positive").
			WithCode(mrwerror.CodeValueOutOfRange).
			WithDetail("max_expression_length", c.Calculator.MaxExpressionLength)
	}

	if c.Calculator.HistorySize < 0 {
		return mrwerror.New("history_size must not be negative").
			WithCode(mrwerror.CodeValueOutOfRange).
			WithDetail("history_size", c.Calculator.HistorySize)
	}

	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "audit":
	default:
		return mrwerror.New(fmt.Sprintf("invalid log level: %s", c.Log.Level)).
			WithCode(mrwerror.CodeInvalidConfig).
			WithDetail("level", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text", "console":
	default:
		return mrwerror.New(fmt.Sprintf("invalid log format: %s", c.Log.Format)).
			WithCode(mrwerror.CodeInvalidConfig).
			WithDetail("format", c.Log.Format)
	}

	if mrwstringx.IsBlank(c.Server.Address) {
		return mrwerror.New("server address must not be blank").
			WithCode(mrwerror.CodeInvalidConfig)
	}

	if c.Server.ReadTimeoutSeconds <= 0 || c.Server.WriteTimeoutSeconds <= 0 {
		return mrwerror.New("server timeouts must be positive").
			WithCode(mrwerror.CodeValueOutOfRange)
	}

	return nil
}

// DegreeMode returns true if the configured angle mode is degrees
func (c *Config) DegreeMode() bool {
	switch strings.ToLower(c.Calculator.AngleMode) {
	case "radians", "rad":
		return false
	default:
		return true
	}
}

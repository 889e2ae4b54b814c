// File: config_test.go
// Title: Core Configuration Unit Tests
// Description: Unit tests for configuration loading, defaults, environment
//              variable overrides, and validation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial test suite

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	mrwerror "github.com/msto63/mRW/foundation/core/error"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Calculator.AngleMode != "degrees" {
		t.Errorf("default angle mode = %q, want degrees", cfg.Calculator.AngleMode)
	}
	if cfg.Calculator.HistorySize != 100 {
		t.Errorf("default history size = %d, want 100", cfg.Calculator.HistorySize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default configuration should validate: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeTempConfig(t, "config.toml", `
[calculator]
angle_mode = "radians"
max_expression_length = 256

[log]
level = "debug"
format = "text"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Calculator.AngleMode != "radians" {
		t.Errorf("angle_mode = %q, want radians", cfg.Calculator.AngleMode)
	}
	if cfg.Calculator.MaxExpressionLength != 256 {
		t.Errorf("max_expression_length = %d, want 256", cfg.Calculator.MaxExpressionLength)
	}
	// Untouched sections keep defaults
	if cfg.Calculator.HistorySize != 100 {
		t.Errorf("history_size = %d, want default 100", cfg.Calculator.HistorySize)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v, want debug/text", cfg.Log)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
calculator:
  angle_mode: radians
server:
  address: "0.0.0.0:9000"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Calculator.AngleMode != "radians" {
		t.Errorf("angle_mode = %q, want radians", cfg.Calculator.AngleMode)
	}
	if cfg.Server.Address != "0.0.0.0:9000" {
		t.Errorf("server address = %q, want 0.0.0.0:9000", cfg.Server.Address)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{}`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}

	var mrwErr *mrwerror.Error
	if !errors.As(err, &mrwErr) || mrwErr.Code() != mrwerror.CodeInvalidConfig {
		t.Errorf("expected CodeInvalidConfig, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}
	if cfg.Calculator.AngleMode != "degrees" {
		t.Errorf("expected defaults, got angle_mode = %q", cfg.Calculator.AngleMode)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MRW_ANGLE_MODE", "radians")
	t.Setenv("MRW_LOG_LEVEL", "trace")
	t.Setenv("MRW_HISTORY_SIZE", "50")

	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}

	if cfg.Calculator.AngleMode != "radians" {
		t.Errorf("angle_mode = %q, want radians", cfg.Calculator.AngleMode)
	}
	if cfg.Log.Level != "trace" {
		t.Errorf("log level = %q, want trace", cfg.Log.Level)
	}
	if cfg.Calculator.HistorySize != 50 {
		t.Errorf("history_size = %d, want 50", cfg.Calculator.HistorySize)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad angle mode", func(c *Config) { c.Calculator.AngleMode = "gradians" }},
		{"zero expression length", func(c *Config) { c.Calculator.MaxExpressionLength = 0 }},
		{"negative history", func(c *Config) { c.Calculator.HistorySize = -1 }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"blank address", func(c *Config) { c.Server.Address = "  " }},
		{"zero timeout", func(c *Config) { c.Server.ReadTimeoutSeconds = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDegreeMode(t *testing.T) {
	cfg := Default()
	if !cfg.DegreeMode() {
		t.Error("default configuration should be in degree mode")
	}

	cfg.Calculator.AngleMode = "rad"
	if cfg.DegreeMode() {
		t.Error("rad should not be degree mode")
	}
}

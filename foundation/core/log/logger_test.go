// File: logger_test.go
// Title: Core Logger Unit Tests
// Description: Unit tests for the structured logger covering level
//              filtering, field propagation, cloning semantics, error
//              integration, and output formatting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	mrwerror "github.com/msto63/mRW/foundation/core/error"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{
		Level:  level,
		Format: FormatJSON,
		Output: buf,
		Name:   "test",
	})
	return logger, buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected log output, got none")
	}
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(line), &data); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", line, err)
	}
	return data
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn)

	logger.Debug("should be filtered")
	logger.Info("should be filtered too")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn, got %q", buf.String())
	}

	logger.Warn("visible")
	if buf.Len() == 0 {
		t.Error("expected warn message to be logged")
	}
}

func TestAuditBypassesLevel(t *testing.T) {
	logger, buf := newTestLogger(LevelFatal)

	logger.Audit("evaluation recorded", Fields{"expression": "2+2"})

	data := decodeLine(t, buf)
	if data["level"] != "audit" {
		t.Errorf("level = %v, want audit", data["level"])
	}
	if data["expression"] != "2+2" {
		t.Errorf("expression field = %v, want 2+2", data["expression"])
	}
}

func TestWithFieldCloning(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	derived := logger.WithField("component", "calc-engine")

	logger.Info("base message")
	base := decodeLine(t, buf)
	if _, ok := base["component"]; ok {
		t.Error("base logger should not carry the derived field")
	}

	buf.Reset()
	derived.Info("derived message")
	got := decodeLine(t, buf)
	if got["component"] != "calc-engine" {
		t.Errorf("component = %v, want calc-engine", got["component"])
	}
}

func TestWithSessionID(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	logger.WithSessionID("sess-42").Info("evaluated")

	data := decodeLine(t, buf)
	if data["session_id"] != "sess-42" {
		t.Errorf("session_id = %v, want sess-42", data["session_id"])
	}
}

func TestLogErrorSeverityRouting(t *testing.T) {
	tests := []struct {
		name      string
		severity  mrwerror.Severity
		wantLevel string
	}{
		{"low severity logs info", mrwerror.SeverityLow, "info"},
		{"medium severity logs warn", mrwerror.SeverityMedium, "warn"},
		{"high severity logs error", mrwerror.SeverityHigh, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(LevelTrace)

			err := mrwerror.New("boom").WithSeverity(tt.severity)
			logger.LogError(err)

			data := decodeLine(t, buf)
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
		})
	}
}

func TestLogErrorIncludesCode(t *testing.T) {
	logger, buf := newTestLogger(LevelTrace)

	err := mrwerror.New("bad token").
		WithCode(mrwerror.CodeCalcSyntax).
		WithExpression("2+#")
	logger.LogError(err)

	data := decodeLine(t, buf)
	if data["error_code"] != "CALC_SYNTAX" {
		t.Errorf("error_code = %v, want CALC_SYNTAX", data["error_code"])
	}
	if data["error_expression"] != "2+#" {
		t.Errorf("error_expression = %v, want 2+#", data["error_expression"])
	}
}

func TestTextFormatter(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatText,
		Output: buf,
		Name:   "engine",
	})

	logger.Info("ready", Fields{"mode": "degrees"})

	out := buf.String()
	if !strings.Contains(out, "[INF]") {
		t.Errorf("text output missing level marker: %q", out)
	}
	if !strings.Contains(out, "(engine)") {
		t.Errorf("text output missing logger name: %q", out)
	}
	if !strings.Contains(out, "mode=degrees") {
		t.Errorf("text output missing field: %q", out)
	}
}

func TestTimerStop(t *testing.T) {
	logger, buf := newTestLogger(LevelTrace)

	timer := logger.StartTimer("evaluate")
	elapsed := timer.Stop()

	if elapsed <= 0 {
		t.Error("expected positive elapsed duration")
	}

	data := decodeLine(t, buf)
	if data["operation"] != "evaluate" {
		t.Errorf("operation = %v, want evaluate", data["operation"])
	}

	// Second stop is a no-op
	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" audit ", LevelAudit, false},
		{"nope", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("console"); err != nil || f != FormatConsole {
		t.Errorf("ParseFormat(console) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

// File: codes_test.go
// Title: Error Code Unit Tests
// Description: Unit tests for error code validation, categorization, and
//              severity derivation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial test suite

package error

import "testing"

func TestCodeIsValid(t *testing.T) {
	valid := []Code{
		CodeUnknown, CodeInternal, CodeCalcSyntax, CodeCalcDomain,
		CodeCalcArithmetic, CodeInvalidConfig, CodeNetworkError,
		CodeValidationFailed,
	}
	for _, c := range valid {
		if !c.IsValid() {
			t.Errorf("code %s should be valid", c)
		}
	}

	if Code("MADE_UP").IsValid() {
		t.Error("unknown code should not be valid")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeCalcSyntax, "calculator"},
		{CodeCalcDomain, "calculator"},
		{CodeCalcArithmetic, "calculator"},
		{CodeSessionClosed, "session"},
		{CodeNetworkError, "network"},
		{CodeInvalidConfig, "configuration"},
		{CodeValueOutOfRange, "validation"},
		{CodeInternal, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeIsUserError(t *testing.T) {
	userErrors := []Code{CodeCalcSyntax, CodeCalcDomain, CodeCalcArithmetic, CodeInvalidInput}
	for _, c := range userErrors {
		if !c.IsUserError() {
			t.Errorf("code %s should be a user error", c)
		}
	}

	systemErrors := []Code{CodeInternal, CodeConfigError, CodeNetworkError}
	for _, c := range systemErrors {
		if c.IsUserError() {
			t.Errorf("code %s should not be a user error", c)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input string
		want  Severity
	}{
		{"low", SeverityLow},
		{"medium", SeverityMedium},
		{"high", SeverityHigh},
		{"critical", SeverityCritical},
		{"bogus", SeverityMedium},
	}

	for _, tt := range tests {
		if got := ParseSeverity(tt.input); got != tt.want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSeverityShouldAlert(t *testing.T) {
	if SeverityLow.ShouldAlert() || SeverityMedium.ShouldAlert() {
		t.Error("low/medium severities should not alert")
	}
	if !SeverityHigh.ShouldAlert() || !SeverityCritical.ShouldAlert() {
		t.Error("high/critical severities should alert")
	}
}

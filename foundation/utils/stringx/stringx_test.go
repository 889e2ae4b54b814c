// File: stringx_test.go
// Title: Extended String Utilities Unit Tests
// Description: Unit tests for string helper functions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial test suite

package stringx

import "testing"

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty string", "", true},
		{"spaces only", "   ", true},
		{"tabs and newlines", "\t\n ", true},
		{"non-blank", "2+2", false},
		{"unicode expression", "π/2", false},
		{"whitespace around content", "  x  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.want {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty("") {
		t.Error("IsEmpty(\"\") should be true")
	}
	if IsEmpty(" ") {
		t.Error("IsEmpty(\" \") should be false")
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "rad", "deg"); got != "rad" {
		t.Errorf("FirstNonBlank = %q, want %q", got, "rad")
	}
	if got := FirstNonBlank("", "  "); got != "" {
		t.Errorf("FirstNonBlank of all blank = %q, want empty", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		want     string
	}{
		{"no truncation needed", "2+2", 10, "...", "2+2"},
		{"truncation with ellipsis", "1234567890", 8, "...", "12345..."},
		{"unicode aware", "ππππππ", 4, "…", "πππ…"},
		{"zero length", "abc", 0, "...", ""},
		{"ellipsis longer than max", "abcdef", 2, "...", ".."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.want {
				t.Errorf("Truncate(%q, %d, %q) = %q, want %q",
					tt.input, tt.maxLen, tt.ellipsis, got, tt.want)
			}
		})
	}
}

func TestCollapseSpaces(t *testing.T) {
	if got := CollapseSpaces("  2 +   2  "); got != "2 + 2" {
		t.Errorf("CollapseSpaces = %q, want %q", got, "2 + 2")
	}
}

func BenchmarkIsBlank(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IsBlank("  2 + 3 * sin(30)  ")
	}
}

func TestContainsIgnoreCase(t *testing.T) {
	if !ContainsIgnoreCase("SIN(30)", "sin") {
		t.Error("expected match ignoring case")
	}
	if ContainsIgnoreCase("cos(30)", "sin") {
		t.Error("unexpected match")
	}
}

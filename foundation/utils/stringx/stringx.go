// File: stringx.go
// Title: Extended String Utilities
// Description: Provides string helper functions used across mRW for input
//              validation and display trimming. Unicode-safe where the
//              standard library operates on bytes.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
)

// IsEmpty returns true if the string has zero length
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FirstNonBlank returns the first string that is not blank, or ""
func FirstNonBlank(candidates ...string) string {
	for _, s := range candidates {
		if !IsBlank(s) {
			return s
		}
	}
	return ""
}

// Truncate shortens a string to at most maxLen runes, appending the
// ellipsis when truncation occurred. The ellipsis counts toward maxLen.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	ellipsisRunes := []rune(ellipsis)
	if len(ellipsisRunes) >= maxLen {
		return string(ellipsisRunes[:maxLen])
	}

	return string(runes[:maxLen-len(ellipsisRunes)]) + ellipsis
}

// ContainsIgnoreCase reports whether substr is within s, case-insensitively
func ContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// CollapseSpaces replaces runs of whitespace with a single space and
// trims the result
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// File: anglemode.go
// Title: Calculator Angle Mode
// Description: Defines the trigonometric angle mode and its parsing. The
//              mode is snapshotted per evaluation and passed explicitly
//              through the evaluator so concurrent evaluations never see
//              a mid-run mode switch.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-19 v0.1.0: Initial angle mode implementation

package ast

import (
	"fmt"
	"strings"
)

// AngleMode selects the interpretation of trigonometric arguments
type AngleMode int

const (
	// Degrees interprets trig arguments in degrees (default)
	Degrees AngleMode = iota

	// Radians interprets trig arguments in radians
	Radians
)

// String returns the string representation of the angle mode
func (m AngleMode) String() string {
	if m == Radians {
		return "radians"
	}
	return "degrees"
}

// Abbrev returns the short display form ("DEG" or "RAD")
func (m AngleMode) Abbrev() string {
	if m == Radians {
		return "RAD"
	}
	return "DEG"
}

// Toggle returns the opposite angle mode
func (m AngleMode) Toggle() AngleMode {
	if m == Degrees {
		return Radians
	}
	return Degrees
}

// ParseAngleMode parses an angle mode name, accepting short forms
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "degrees", "degree", "deg":
		return Degrees, nil
	case "radians", "radian", "rad":
		return Radians, nil
	default:
		return Degrees, fmt.Errorf("invalid angle mode: %q", s)
	}
}

// ============================================================================
// meinRECHENWERK (mRW) - Wissenschaftlicher Rechner
// ============================================================================
//
// Package:     version
// Description: Central version management for all mRW components
// Author:      Mike Stoffels with Claude
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package version

// Version constants for all mRW components
const (
	// Platform version
	Platform = "0.1.0"

	// Component versions
	Engine  = "0.1.0"
	Gateway = "0.1.0"
	TUI     = "0.1.0"
)

// Info holds version information for a component
type Info struct {
	Component string `json:"component"`
	Version   string `json:"version"`
	Platform  string `json:"platform"`
}

// Get returns version info for a component
func Get(component, version string) Info {
	return Info{
		Component: component,
		Version:   version,
		Platform:  Platform,
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Centralized styling for all CLI commands in passcheck.
//
// All commands use these shared styles instead of defining their own,
// so pass/fail markers and strength colors match the TUI.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// init configures lipgloss color profile based on terminal capabilities.
func init() {
	// Respects NO_COLOR, FORCE_COLOR, and TTY detection
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES FOR ALL CLI COMMANDS
// =============================================================================

var (
	// TitleStyle is used for command titles and headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")) // Cyan

	// LabelStyle is used for field labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Light gray

	// PassStyle marks satisfied rules
	PassStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	// FailStyle marks unsatisfied rules
	FailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // Red

	// StrongStyle colors the "strong" verdict
	StrongStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	// SafeStyle colors the "safe" verdict
	SafeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // Amber
			Bold(true)

	// UnsafeStyle colors the "unsafe" verdict
	UnsafeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// ErrorStyle is used for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// strengthStyle maps a strength display name to its verdict style.
func strengthStyle(level string) lipgloss.Style {
	switch level {
	case "strong":
		return StrongStyle
	case "safe":
		return SafeStyle
	default:
		return UnsafeStyle
	}
}

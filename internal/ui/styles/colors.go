// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the passcheck TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// ACCENT COLORS
// =============================================================================

// Cyan - Brand color, shortcut keys, input prompt
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Purple - Header accents, help overlay border
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Emerald - Satisfied rules, strong passwords, success toasts
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Amber - Partially satisfied state, warnings
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Rose - Failed rules, unsafe passwords, error toasts
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// =============================================================================
// STRENGTH COLORS
// =============================================================================
// One color per strength level. The meter, the strength label, and the
// status bar all key off these so the levels stay visually consistent.

var StrengthUnsafeColor = Rose
var StrengthSafeColor = Amber
var StrengthStrongColor = Emerald

// MeterEmpty - Unfilled meter segments
var MeterEmpty = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#45475A"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Slightly darker/lighter surface for headers/footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Borders, separators, subtle backgrounds
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Hints, shortcut descriptions, very subtle text
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// FocusRing - Border color for the focused password field
var FocusRing = Cyan

// FocusRingDim - Border color for the blurred password field
var FocusRingDim = lipgloss.AdaptiveColor{Light: "#D4D4D4", Dark: "#45475A"}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicatorSet contains text/shape indicators for status states.
// Shapes provide a cue beyond color so the checklist stays readable for
// colorblind users and on monochrome terminals.
type StatusIndicatorSet struct {
	Pass    string // Satisfied rule
	Fail    string // Unsatisfied rule
	Error   string // Error toasts
	Warning string // Warning toasts
	Info    string // Status toasts
	Success string // Success toasts
}

// StatusIndicators provides ASCII-only indicators for maximum terminal
// compatibility.
var StatusIndicators = StatusIndicatorSet{
	Pass:    "[ok]",
	Fail:    "[--]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[i]",
	Success: "[OK]",
}

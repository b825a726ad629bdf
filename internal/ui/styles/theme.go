// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the passcheck TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// PASSWORD FIELD STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style
	InputText      lipgloss.Style
	MaskBadge      lipgloss.Style

	// ==========================================================================
	// CHECKLIST STYLES
	// ==========================================================================

	RulePass      lipgloss.Style
	RuleFail      lipgloss.Style
	RuleLabelPass lipgloss.Style
	RuleLabelFail lipgloss.Style

	// ==========================================================================
	// STRENGTH METER STYLES
	// ==========================================================================

	MeterUnsafe lipgloss.Style
	MeterSafe   lipgloss.Style
	MeterStrong lipgloss.Style
	MeterEmpty  lipgloss.Style
	MeterLabel  lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// HELP OVERLAY STYLES
	// ==========================================================================

	HelpBox   lipgloss.Style
	HelpTitle lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Password field
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(FocusRing).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.MaskBadge = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Checklist
	t.RulePass = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.RuleFail = lipgloss.NewStyle().
		Foreground(Rose)

	t.RuleLabelPass = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.RuleLabelFail = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Strength meter
	t.MeterUnsafe = lipgloss.NewStyle().Foreground(StrengthUnsafeColor).Bold(true)
	t.MeterSafe = lipgloss.NewStyle().Foreground(StrengthSafeColor).Bold(true)
	t.MeterStrong = lipgloss.NewStyle().Foreground(StrengthStrongColor).Bold(true)
	t.MeterEmpty = lipgloss.NewStyle().Foreground(MeterEmpty)
	t.MeterLabel = lipgloss.NewStyle().Foreground(TextSecondary)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Help overlay
	t.HelpBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Background(Surface).
		Padding(1, 2)

	t.HelpTitle = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true).
		Width(12)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(TextSecondary)
}

// StrengthStyle returns the meter style matching a strength level given as
// its display name ("unsafe", "safe", "strong").
func (t *Theme) StrengthStyle(level string) lipgloss.Style {
	switch level {
	case "strong":
		return t.MeterStrong
	case "safe":
		return t.MeterSafe
	default:
		return t.MeterUnsafe
	}
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 50 columns
	LayoutMedium                   // 50-90 columns
	LayoutWide                     // > 90 columns
)

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 50 {
		return LayoutNarrow
	}
	if t.Width < 90 {
		return LayoutMedium
	}
	return LayoutWide
}

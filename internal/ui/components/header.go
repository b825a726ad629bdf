// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the passcheck TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/passcheck-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title bar shown above the password field.
type Header struct {
	Title    string
	Subtitle string
	Width    int
	theme    *styles.Theme
}

// NewHeader creates a new Header component with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:    "passcheck",
		Subtitle: "password strength checker",
		Width:    80,
		theme:    theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the full header: brand line plus subtitle.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}

	accentStyle := lipgloss.NewStyle().Foreground(styles.Purple)

	brand := accentStyle.Render("< ") +
		h.theme.HeaderTitle.Render(h.Title) +
		accentStyle.Render(" >")

	line := brand
	if h.Subtitle != "" {
		line += "  " + h.theme.HeaderSubtitle.Render(h.Subtitle)
	}

	return lipgloss.NewStyle().
		Width(width).
		Background(styles.SurfaceDim).
		Padding(0, 1).
		Render(line)
}

// ViewCompact renders a single minimal line for narrow terminals.
func (h *Header) ViewCompact() string {
	return h.theme.HeaderTitle.Render(h.Title)
}

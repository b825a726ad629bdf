// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the passcheck TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/passcheck-tui/internal/password"
	"github.com/jeranaias/passcheck-tui/internal/ui/styles"
)

// =============================================================================
// STRENGTH METER COMPONENT
// =============================================================================

// meterSegmentRune is the fill character for meter segments.
const meterSegmentRune = "━"

// StrengthMeter renders a segmented strength bar plus a label.
// One segment per rule; filled segments take the color of the current
// strength level so the bar and the label always agree.
type StrengthMeter struct {
	theme *styles.Theme
	width int
}

// NewStrengthMeter creates a meter renderer bound to a theme.
func NewStrengthMeter(theme *styles.Theme) *StrengthMeter {
	return &StrengthMeter{theme: theme, width: 80}
}

// SetWidth updates the available render width.
func (m *StrengthMeter) SetWidth(width int) {
	m.width = width
}

// Render draws the bar and the strength label on one line.
func (m *StrengthMeter) Render(eval password.Evaluation) string {
	total := len(eval.Results)
	if total == 0 {
		return ""
	}

	segWidth := m.segmentWidth(total)
	filledStyle := m.theme.StrengthStyle(eval.Strength.String())
	segment := strings.Repeat(meterSegmentRune, segWidth)

	parts := make([]string, 0, total+1)
	for i := 0; i < total; i++ {
		if i < eval.Passed {
			parts = append(parts, filledStyle.Render(segment))
		} else {
			parts = append(parts, m.theme.MeterEmpty.Render(segment))
		}
	}

	label := filledStyle.Render(eval.Strength.String())
	parts = append(parts, " "+label)

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// segmentWidth sizes segments to the available width, reserving room
// for the label and inter-segment joins.
func (m *StrengthMeter) segmentWidth(total int) int {
	// "strong" is the longest label
	reserved := len(" strong") + 2
	avail := m.width - reserved
	if avail < total {
		return 1
	}
	w := avail / total
	if w > 6 {
		w = 6
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the passcheck TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/passcheck-tui/internal/password"
	"github.com/jeranaias/passcheck-tui/internal/ui/styles"
	"github.com/jeranaias/passcheck-tui/internal/util"
)

// =============================================================================
// CHECKLIST COMPONENT
// =============================================================================

// Checklist renders the rule rows with pass/fail indicators.
// Row order always matches password.Rules; only the indicator and
// styling change as the candidate password evolves.
type Checklist struct {
	theme   *styles.Theme
	width   int
	compact bool
}

// NewChecklist creates a checklist renderer bound to a theme.
func NewChecklist(theme *styles.Theme) *Checklist {
	return &Checklist{theme: theme, width: 80}
}

// SetWidth updates the available render width.
func (c *Checklist) SetWidth(width int) {
	c.width = width
}

// SetCompact switches to the one-line indicator row for short terminals.
func (c *Checklist) SetCompact(compact bool) {
	c.compact = compact
}

// Render draws every rule row for the given evaluation.
func (c *Checklist) Render(eval password.Evaluation) string {
	if c.compact {
		return c.renderCompact(eval)
	}

	rows := make([]string, 0, len(eval.Results))
	for _, res := range eval.Results {
		rows = append(rows, c.renderRow(res))
	}
	return strings.Join(rows, "\n")
}

// renderCompact collapses the checklist to a single indicator row so the
// widget still fits in very short terminals.
func (c *Checklist) renderCompact(eval password.Evaluation) string {
	parts := make([]string, 0, len(eval.Results))
	for _, res := range eval.Results {
		if res.Passed {
			parts = append(parts, c.theme.RulePass.Render(styles.StatusIndicators.Pass))
		} else {
			parts = append(parts, c.theme.RuleFail.Render(styles.StatusIndicators.Fail))
		}
	}
	return strings.Join(parts, " ") + "  " + c.theme.ShortcutDesc.Render(c.Summary(eval))
}

// renderRow draws a single indicator + label pair.
func (c *Checklist) renderRow(res password.RuleResult) string {
	// Leave room for the indicator and the space after it
	text := util.TruncateWidth(res.Label, c.width-2)

	var indicator, label string
	if res.Passed {
		indicator = c.theme.RulePass.Render(styles.StatusIndicators.Pass)
		label = c.theme.RuleLabelPass.Render(text)
	} else {
		indicator = c.theme.RuleFail.Render(styles.StatusIndicators.Fail)
		label = c.theme.RuleLabelFail.Render(text)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, indicator, " ", label)
}

// Summary returns a one-line "N/M rules" digest for the status bar.
func (c *Checklist) Summary(eval password.Evaluation) string {
	return toStr(eval.Passed) + "/" + toStr(len(eval.Results)) + " rules"
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package checker provides the password checker view for the TUI.
//
// This file contains all rendering logic for the checker interface:
// the header, the password field, the rule checklist, the strength
// meter, the status bar, the help overlay, and the toast stack.
package checker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/passcheck-tui/internal/ui/components"
	"github.com/jeranaias/passcheck-tui/internal/ui/styles"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the complete checker view.
// Layout: header + password field + checklist + meter + toast region + status bar.
// The toast region absorbs all leftover height so the status bar stays pinned
// to the bottom row.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	header := m.renderHeader()
	field := m.renderField()
	checklist := m.theme.Container.Render(m.checklist.Render(m.eval))

	var meter string
	if m.cfg.UI.ShowMeter {
		meter = m.theme.Container.Render(m.meter.Render(m.eval))
	}

	status := m.renderStatusBar()

	sections := []string{header, "", field, "", checklist}
	if meter != "" {
		sections = append(sections, "", meter)
	}
	content := strings.Join(sections, "\n")

	// Leftover rows between the content and the status bar hold the toasts
	contentHeight := lipgloss.Height(content)
	statusHeight := lipgloss.Height(status)
	spare := m.height - contentHeight - statusHeight
	if spare < 0 {
		spare = 0
	}

	var middle string
	if m.toasts.HasToasts() && spare > 0 {
		middle = components.RenderToastStack(m.toasts.GetToasts(), m.width, spare)
	} else if spare > 0 {
		middle = strings.Repeat("\n", spare-1)
	}

	if middle != "" {
		return content + "\n" + middle + "\n" + status
	}
	return content + "\n" + status
}

// =============================================================================
// SECTIONS
// =============================================================================

// renderHeader draws the title bar.
func (m Model) renderHeader() string {
	if m.theme.GetLayoutMode() == styles.LayoutNarrow {
		return m.header.ViewCompact()
	}
	return m.header.View()
}

// renderField draws the bordered password input with its mask badge.
func (m Model) renderField() string {
	box := m.theme.InputContainer.Width(m.width - 4).Render(m.input.View())
	badge := m.theme.MaskBadge.Render("input " + maskLabel(m.masked))
	return lipgloss.JoinVertical(lipgloss.Left, box, "  "+badge)
}

// renderStatusBar draws the bottom bar: strength, rule count, shortcuts.
func (m Model) renderStatusBar() string {
	strength := m.theme.StrengthStyle(m.eval.Strength.String()).Render(m.eval.Strength.String())
	summary := m.checklist.Summary(m.eval)

	left := strength + m.theme.ShortcutDesc.Render(" · "+summary)

	var hints []string
	for _, b := range m.keyMap.ShortHelp() {
		h := b.Help()
		hints = append(hints,
			m.theme.ShortcutKey.Render(h.Key)+m.theme.ShortcutDesc.Render(" "+h.Desc))
	}
	right := strings.Join(hints, m.theme.ShortcutDesc.Render("  "))

	// In narrow layouts the hints do not fit; keep the strength summary
	if m.theme.GetLayoutMode() == styles.LayoutNarrow {
		return m.theme.StatusBar.Width(m.width).Render(left)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return m.theme.StatusBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// renderHelpOverlay draws the full-screen help view.
func (m Model) renderHelpOverlay() string {
	var b strings.Builder

	b.WriteString(m.theme.HelpTitle.Render("Keyboard shortcuts"))
	b.WriteString("\n\n")

	for _, group := range m.keyMap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(m.theme.HelpKey.Render(h.Key))
			b.WriteString(m.theme.HelpDesc.Render(h.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.theme.MaskBadge.Render("esc or q to close"))

	box := m.theme.HelpBox.Render(b.String())

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

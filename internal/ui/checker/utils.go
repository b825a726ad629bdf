// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package checker provides the password checker view for the TUI.
package checker

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/passcheck-tui/internal/password"
)

// =============================================================================
// COMMANDS
// =============================================================================

// generateCmd creates a command that generates a strong password.
func generateCmd(g *password.Generator) tea.Cmd {
	return func() tea.Msg {
		return GeneratedMsg{Password: g.Generate()}
	}
}

// copyToClipboardCmd writes text to the system clipboard off the main
// update loop. Clipboard access can block on some platforms (X11
// selections in particular), so it runs as a command.
func copyToClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardResultMsg{Err: clipboard.WriteAll(text)}
	}
}

// =============================================================================
// FORMATTING UTILITIES
// =============================================================================

// maskLabel describes the current mask state for the status bar.
func maskLabel(masked bool) string {
	if masked {
		return "hidden"
	}
	return "visible"
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package checker provides the password checker view for the TUI.
//
// This file defines keyboard bindings and shortcuts for the checker
// interface. Letter and punctuation keys are deliberately left free:
// every printable character is a legal password character, so all
// shortcuts live on control keys and function keys.
package checker

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the checker interface.
// Each binding includes help text for the help overlay.
type KeyMap struct {
	ToggleMask   key.Binding
	Generate     key.Binding
	Copy         key.Binding
	Clear        key.Binding
	DismissToast key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings for the checker interface.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleMask: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "show/hide password"),
		),
		Generate: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("C-g", "generate strong password"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy to clipboard"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "clear field"),
		),
		DismissToast: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("C-x", "dismiss notification"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("C-q", "quit"),
		),
	}
}

// =============================================================================
// KEY BINDING HELPERS
// =============================================================================

// ShortHelp returns the key bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Copy, k.ToggleMask, k.Help, k.Quit}
}

// FullHelp returns the key bindings shown in the full help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Password actions
		{k.Generate, k.Copy, k.Clear},
		// Display
		{k.ToggleMask, k.DismissToast},
		// Application
		{k.Help, k.Quit},
	}
}

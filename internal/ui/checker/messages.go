// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package checker provides the password checker view for the TUI.
//
// This file defines the Bubble Tea message types used by the checker
// interface. All message types follow Bubble Tea conventions and are
// immutable.
package checker

import (
	"github.com/jeranaias/passcheck-tui/internal/config"
)

// =============================================================================
// CLIPBOARD MESSAGES
// =============================================================================

// ClipboardResultMsg reports the outcome of a clipboard write.
// Err is nil on success. A failure is surfaced as a toast; it never
// interrupts typing.
type ClipboardResultMsg struct {
	Err error
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg is sent by the config file watcher when the config
// file changes on disk while the TUI is running.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// =============================================================================
// GENERATION MESSAGES
// =============================================================================

// GeneratedMsg carries a freshly generated password into the model.
// Generation is synchronous and cheap, but routing it through a message
// keeps Update the single place where the field changes.
type GeneratedMsg struct {
	Password string
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package checker provides the password checker view for the TUI.
package checker

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/passcheck-tui/internal/config"
	"github.com/jeranaias/passcheck-tui/internal/password"
	"github.com/jeranaias/passcheck-tui/internal/ui/components"
	"github.com/jeranaias/passcheck-tui/internal/ui/styles"
)

// maskRune hides password characters in masked mode.
const maskRune = '•'

// =============================================================================
// CHECKER MODEL
// =============================================================================

// Model is the Bubble Tea model for the checker view.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Password field
	input  textinput.Model
	masked bool

	// Current evaluation, recomputed on every keystroke
	eval password.Evaluation

	// Generator for the strong-password shortcut
	generator *password.Generator

	// Key bindings
	keyMap KeyMap

	// Overlays
	showHelp bool
	toasts   *components.ToastManager

	// Components
	header    *components.Header
	checklist *components.Checklist
	meter     *components.StrengthMeter

	// Configuration
	cfg *config.Config
}

// New creates a new checker model bound to the given config and theme.
func New(cfg *config.Config, theme *styles.Theme) Model {
	input := textinput.New()
	input.Placeholder = "Type a password to check it"
	input.Prompt = "> "
	input.PromptStyle = theme.InputPrompt
	input.TextStyle = theme.InputText
	input.CharLimit = 256
	input.EchoCharacter = maskRune
	if cfg.UI.MaskByDefault {
		input.EchoMode = textinput.EchoPassword
	}
	input.Focus()

	return Model{
		theme:     theme,
		input:     input,
		masked:    cfg.UI.MaskByDefault,
		eval:      password.Evaluate(""),
		generator: password.NewGenerator(),
		keyMap:    DefaultKeyMap(),
		toasts:    components.NewToastManager(),
		header:    components.NewHeader(theme),
		checklist: components.NewChecklist(theme),
		meter:     components.NewStrengthMeter(theme),
		cfg:       cfg,
	}
}

// Init starts cursor blinking and the toast tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, components.ToastTickCmd())
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case components.ToastTickMsg:
		m.toasts.TickToasts()
		return m, components.ToastTickCmd()

	case GeneratedMsg:
		return m.handleGenerated(msg)

	case ClipboardResultMsg:
		return m.handleClipboardResult(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)
	}

	return m.updateInput(msg)
}

// handleResize updates all width-dependent components.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)

	m.header.SetWidth(msg.Width)
	m.checklist.SetWidth(msg.Width - 4)
	m.meter.SetWidth(msg.Width - 4)
	m.checklist.SetCompact(m.cfg.UI.CompactMode || msg.Height < 16)

	// Border (2) + padding (2) + prompt (2)
	inputWidth := msg.Width - 8
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth

	return m, nil
}

// handleKey routes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The help overlay swallows everything except quit
	if m.showHelp {
		if key.Matches(msg, m.keyMap.Quit) {
			return m, tea.Quit
		}
		switch msg.String() {
		case "esc", "q", "f1", "?":
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keyMap.ToggleMask):
		return m.toggleMask()

	case key.Matches(msg, m.keyMap.Generate):
		return m, generateCmd(m.generator)

	case key.Matches(msg, m.keyMap.Copy):
		return m.handleCopy()

	case key.Matches(msg, m.keyMap.Clear):
		m.input.Reset()
		m.eval = password.Evaluate("")
		return m, nil

	case key.Matches(msg, m.keyMap.DismissToast):
		m.dismissNewestToast()
		return m, nil
	}

	// "?" opens help only while the field is empty; with content it is
	// an ordinary password character
	if msg.String() == "?" && m.input.Value() == "" {
		m.showHelp = true
		return m, nil
	}

	return m.updateInput(msg)
}

// updateInput forwards a message to the text input and re-evaluates.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.eval = password.Evaluate(m.input.Value())
	return m, cmd
}

// toggleMask flips between hidden and visible password display.
func (m Model) toggleMask() (tea.Model, tea.Cmd) {
	m.masked = !m.masked
	if m.masked {
		m.input.EchoMode = textinput.EchoPassword
	} else {
		m.input.EchoMode = textinput.EchoNormal
	}
	return m, nil
}

// handleGenerated installs a generated password into the field.
func (m Model) handleGenerated(msg GeneratedMsg) (tea.Model, tea.Cmd) {
	m.input.SetValue(msg.Password)
	m.input.CursorEnd()
	m.eval = password.Evaluate(msg.Password)
	m.toasts.AddStatus("Generated a strong password")
	return m, nil
}

// handleCopy starts a clipboard write for the current field value.
func (m Model) handleCopy() (tea.Model, tea.Cmd) {
	if !m.cfg.Clipboard.Enabled {
		m.toasts.AddWarning("Clipboard is disabled in config")
		return m, nil
	}
	value := m.input.Value()
	if value == "" {
		m.toasts.AddWarning("Nothing to copy")
		return m, nil
	}
	return m, copyToClipboardCmd(value)
}

// handleClipboardResult reports the copy outcome as a toast.
func (m Model) handleClipboardResult(msg ClipboardResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.toasts.AddError("Copy failed: " + msg.Err.Error())
		return m, nil
	}
	if m.cfg.UI.CopyToasts {
		m.toasts.AddSuccess("Password copied to clipboard")
	}
	return m, nil
}

// handleConfigReloaded applies a config reloaded from disk.
// The mask state is left alone so a reload never reveals a password
// the user chose to hide.
func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Config == nil {
		return m, nil
	}
	m.cfg = msg.Config
	m.checklist.SetCompact(m.cfg.UI.CompactMode || m.height < 16)
	m.toasts.AddStatus("Configuration reloaded")
	return m, nil
}

// dismissNewestToast removes the most recent toast, if any.
func (m Model) dismissNewestToast() {
	toasts := m.toasts.GetToasts()
	if len(toasts) > 0 {
		m.toasts.RemoveToast(toasts[0].ID)
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Value returns the current field contents.
func (m Model) Value() string {
	return m.input.Value()
}

// Evaluation returns the current rule evaluation.
func (m Model) Evaluation() password.Evaluation {
	return m.eval
}

// Masked reports whether the field is hidden.
func (m Model) Masked() bool {
	return m.masked
}

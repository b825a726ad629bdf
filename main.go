// passcheck - Interactive password strength checklist for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/passcheck-tui/internal/cli"
	"github.com/jeranaias/passcheck-tui/internal/config"
	"github.com/jeranaias/passcheck-tui/internal/ui/checker"
	"github.com/jeranaias/passcheck-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdCheck:
		os.Exit(cli.HandleCheck(args))

	case cli.CmdGenerate:
		os.Exit(cli.HandleGenerate(args))

	case cli.CmdConfig:
		os.Exit(cli.HandleConfig(args))

	case cli.CmdVersion:
		cli.HandleVersion(args)

	case cli.CmdHelp:
		cli.HandleHelp()

	case cli.CmdTUI:
		runTUI()
	}
}

// runTUI launches the interactive checker.
func runTUI() {
	if !cli.IsTTY() {
		fmt.Fprintln(os.Stderr, "passcheck needs a terminal; use 'passcheck check' in scripts")
		os.Exit(1)
	}

	cfg := config.Global()
	applyThemePreference(cfg)

	theme := styles.NewTheme()
	m := checker.New(cfg, theme)

	program := tea.NewProgram(m, tea.WithAltScreen())

	// Reload the UI when the config file changes on disk
	watcher, err := config.NewWatcher(func(reloaded *config.Config) {
		program.Send(checker.ConfigReloadedMsg{Config: reloaded})
	})
	if err == nil {
		if werr := watcher.Watch(); werr == nil {
			defer watcher.Close()
		}
	}

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// applyThemePreference forces the background assumption when the config
// names an explicit theme. "auto" leaves terminal detection in charge.
func applyThemePreference(cfg *config.Config) {
	switch strings.ToLower(cfg.UI.Theme) {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}
}

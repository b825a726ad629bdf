// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// configcmd.go - The config management command.
//
// Subcommands: show (default), get <key>, set <key> <value>, path, reset.
// Keys use dot notation matching the TOML layout, e.g. "ui.theme".
package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/passcheck-tui/internal/config"
	"github.com/jeranaias/passcheck-tui/internal/util"
)

// HandleConfig handles the config command.
// Returns the process exit code.
func HandleConfig(args Args) int {
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(args)
	case "get":
		return handleConfigGet(args)
	case "set":
		return handleConfigSet(args)
	case "path":
		return handleConfigPath(args)
	case "reset":
		return handleConfigReset(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args.Subcommand)
		fmt.Fprintln(os.Stderr, "Usage: passcheck config [show|get|set|path|reset]")
		return 1
	}
}

// handleConfigShow prints the effective configuration.
func handleConfigShow(args Args) int {
	cfg := config.Global()

	if args.JSON {
		NewJSONResponse("config show", cfg).Print()
		return 0
	}

	fmt.Println(TitleStyle.Render("Configuration"))
	fmt.Println()
	for _, key := range config.GetAllKeys() {
		val, err := cfg.Get(key)
		if err != nil {
			continue
		}
		// Pad before styling; ANSI codes would skew printf width padding
		fmt.Printf("  %s %v\n", LabelStyle.Render(util.PadWidth(key, 22)), val)
	}
	return 0
}

// handleConfigGet prints a single configuration value.
func handleConfigGet(args Args) int {
	if args.ConfigKey == "" {
		fmt.Fprintln(os.Stderr, "Usage: passcheck config get <key>")
		return 1
	}

	val, err := config.Global().Get(args.ConfigKey)
	if err != nil {
		if args.JSON {
			NewJSONErrorResponse("config get", err).Print()
		} else {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: "+err.Error()))
		}
		return 1
	}

	if args.JSON {
		NewJSONResponse("config get", map[string]interface{}{args.ConfigKey: val}).Print()
		return 0
	}
	fmt.Printf("%v\n", val)
	return 0
}

// handleConfigSet sets a configuration value and writes the file.
func handleConfigSet(args Args) int {
	if args.ConfigKey == "" || args.ConfigVal == "" {
		fmt.Fprintln(os.Stderr, "Usage: passcheck config set <key> <value>")
		return 1
	}

	cfg := config.Global().Clone()
	if err := cfg.Set(args.ConfigKey, args.ConfigVal); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: "+err.Error()))
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: "+err.Error()))
		return 1
	}
	if err := config.Save(cfg); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: could not save config: "+err.Error()))
		return 1
	}
	config.SetGlobal(cfg)

	if !args.Quiet {
		fmt.Printf("%s = %s\n", args.ConfigKey, args.ConfigVal)
	}
	return 0
}

// handleConfigPath prints the config file location.
func handleConfigPath(args Args) int {
	path, err := config.ConfigPathTOML()
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: "+err.Error()))
		return 1
	}

	if args.JSON {
		NewJSONResponse("config path", map[string]string{"path": path}).Print()
		return 0
	}
	fmt.Println(path)
	return 0
}

// handleConfigReset writes the default configuration back to disk.
func handleConfigReset(args Args) int {
	cfg := config.Default()
	if err := config.Save(cfg); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: could not save config: "+err.Error()))
		return 1
	}
	config.SetGlobal(cfg)

	if !args.Quiet {
		fmt.Println("Configuration reset to defaults")
	}
	return 0
}

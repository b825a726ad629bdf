// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for passcheck.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdCheck
	CmdGenerate
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet bool
	JSON  bool // Output in JSON format

	// Command-specific
	Password   string
	Subcommand string
	ConfigKey  string
	ConfigVal  string
	Count      int  // Number of passwords for generate
	Copy       bool // Copy generated password to clipboard

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `passcheck - interactive password strength checker %s

Passcheck evaluates a password against five composition rules and can
generate passwords that satisfy all of them.

Usage:
  passcheck                    Start the interactive TUI (default)
  passcheck check [password]   Check a password (reads stdin when piped)
  passcheck generate           Generate a strong password
  passcheck config [show|get|set|path|reset]
                               Manage configuration
  passcheck version            Show version information
  passcheck help               Show this help

Check flags:
  --json                       Machine-readable rule report
  -q, --quiet                  Exit code only, no output

Generate flags:
  --count N                    Generate N passwords (default 1)
  --copy                       Copy the password to the clipboard
  --json                       Machine-readable output

Exit codes:
  0  password is strong (check) / success
  1  password is not strong (check) / error

Examples:
  passcheck
  passcheck check 'Tr1cky!pass'
  passcheck check -- '-Leading.Dash1'
  echo -n "$PASS" | passcheck check --json
  passcheck generate --count 3
  passcheck config set ui.theme dark

Environment:
  PASSCHECK_THEME              auto|dark|light
  PASSCHECK_MASK               start with the field masked (1/0)
  PASSCHECK_NO_CLIPBOARD       disable clipboard integration
`

// PrintUsage prints the usage text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("passcheck version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	args := os.Args[1:]

	remaining, parsedArgs := parseGlobalFlags(args)

	// If no remaining args, default to TUI
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "check", "c":
		parseCheckArgs(&parsedArgs, remaining)
		return CmdCheck, parsedArgs

	case "generate", "gen", "g":
		parseGenerateArgs(&parsedArgs, remaining)
		return CmdGenerate, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "version", "--version", "-V":
		return CmdVersion, parsedArgs

	case "help", "--help", "-h":
		return CmdHelp, parsedArgs

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, parsedArgs
	}
}

// parseGlobalFlags extracts flags that apply to every command.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	for i, arg := range args {
		// Everything from "--" on belongs to the command, not the flags
		if arg == "--" {
			remaining = append(remaining, args[i:]...)
			break
		}
		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "--json":
			parsedArgs.JSON = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, parsedArgs
}

// parseCheckArgs parses check command specific arguments.
func parseCheckArgs(args *Args, remaining []string) {
	parser := NewArgParser(remaining)

	if parser.BoolFlag("json") {
		args.JSON = true
	}
	if parser.BoolFlag("quiet") || parser.BoolFlag("q") {
		args.Quiet = true
	}

	// The whole positional tail is the password; spaces are legal
	args.Password = strings.Join(parser.PositionalFrom(0), " ")
}

// parseGenerateArgs parses generate command specific arguments.
func parseGenerateArgs(args *Args, remaining []string) {
	parser := NewArgParser(remaining)

	args.Count = parser.FlagIntOrDefault("count", 1)
	if args.Count < 1 {
		args.Count = 1
	}
	args.Copy = parser.BoolFlag("copy")
	if parser.BoolFlag("json") {
		args.JSON = true
	}
}

// parseConfigArgs parses config command specific arguments.
func parseConfigArgs(args *Args, remaining []string) {
	parser := NewArgParser(remaining)

	args.Subcommand = parser.Subcommand()
	args.ConfigKey = parser.Positional(1)
	args.ConfigVal = parser.Positional(2)
	if parser.BoolFlag("json") {
		args.JSON = true
	}
}

// =============================================================================
// SIMPLE COMMAND HANDLERS
// =============================================================================

// HandleVersion handles the version command.
func HandleVersion(args Args) {
	if args.JSON {
		resp := NewJSONResponse("version", map[string]string{
			"version":    Version,
			"git_commit": GitCommit,
			"build_date": BuildDate,
		})
		resp.Print()
		return
	}
	PrintVersion()
}

// HandleHelp handles the help command.
func HandleHelp() {
	PrintUsage()
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// generate.go - The password generation command.
package cli

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/jeranaias/passcheck-tui/internal/config"
	"github.com/jeranaias/passcheck-tui/internal/password"
)

// generateReport is the JSON payload for the generate command.
type generateReport struct {
	Passwords []string `json:"passwords"`
	Length    int      `json:"length"`
	Copied    bool     `json:"copied"`
}

// HandleGenerate handles the generate command.
// Returns the process exit code.
func HandleGenerate(args Args) int {
	gen := password.NewGenerator()

	passwords := make([]string, 0, args.Count)
	for i := 0; i < args.Count; i++ {
		passwords = append(passwords, gen.Generate())
	}

	copied := false
	if args.Copy {
		if !config.Global().Clipboard.Enabled {
			fmt.Fprintln(os.Stderr, "Warning: clipboard is disabled in config, not copying")
		} else if err := clipboard.WriteAll(passwords[0]); err != nil {
			// Clipboard failure is not fatal; the password still prints
			fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		} else {
			copied = true
		}
	}

	if args.JSON {
		report := generateReport{
			Passwords: passwords,
			Length:    password.GeneratedLength,
			Copied:    copied,
		}
		NewJSONResponse("generate", report).Print()
		return 0
	}

	for _, pw := range passwords {
		fmt.Println(pw)
	}
	if copied && !args.Quiet {
		fmt.Fprintln(os.Stderr, "Copied to clipboard")
	}

	return 0
}

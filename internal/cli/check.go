// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// check.go - The scriptable password check command.
//
// `passcheck check` evaluates one password and exits 0 only when every
// rule passes, so it can gate scripts and CI jobs:
//
//	echo -n "$PASS" | passcheck check --quiet || exit 1
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jeranaias/passcheck-tui/internal/password"
	"github.com/jeranaias/passcheck-tui/internal/ui/styles"
)

// checkReport is the JSON payload for the check command.
type checkReport struct {
	Results  []password.RuleResult `json:"results"`
	Passed   int                   `json:"passed"`
	Total    int                   `json:"total"`
	Strength string                `json:"strength"`
	Strong   bool                  `json:"strong"`
}

// HandleCheck handles the check command.
// Returns the process exit code: 0 when the password is strong, 1 otherwise.
func HandleCheck(args Args) int {
	pw := args.Password

	// When no password was given and stdin is piped, read it from there
	if pw == "" && !IsTTY() {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: could not read stdin: "+err.Error()))
			return 1
		}
		// A single trailing newline comes from the shell, not the password
		pw = strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
	}

	if pw == "" {
		if !args.Quiet {
			fmt.Fprintln(os.Stderr, "Usage: passcheck check <password>  (or pipe the password on stdin)")
		}
		return 1
	}

	eval := password.Evaluate(pw)
	strong := eval.Strength == password.StrengthStrong

	switch {
	case args.JSON:
		report := checkReport{
			Results:  eval.Results,
			Passed:   eval.Passed,
			Total:    len(eval.Results),
			Strength: eval.Strength.String(),
			Strong:   strong,
		}
		NewJSONResponse("check", report).Print()

	case args.Quiet:
		// Exit code only

	default:
		printCheckReport(eval)
	}

	if strong {
		return 0
	}
	return 1
}

// printCheckReport prints the human-readable rule report.
func printCheckReport(eval password.Evaluation) {
	fmt.Println(TitleStyle.Render("Password check"))
	fmt.Println()

	for _, res := range eval.Results {
		if res.Passed {
			fmt.Printf("  %s %s\n", PassStyle.Render(styles.StatusIndicators.Pass), res.Label)
		} else {
			fmt.Printf("  %s %s\n", FailStyle.Render(styles.StatusIndicators.Fail), res.Label)
		}
	}

	fmt.Println()
	verdict := eval.Strength.String()
	fmt.Printf("  %s %s (%d/%d rules)\n",
		LabelStyle.Render("Strength:"),
		strengthStyle(verdict).Render(verdict),
		eval.Passed, len(eval.Results))
}

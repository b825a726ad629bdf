// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line interface parsing and execution.
package cli

import (
	"testing"
)

// =============================================================================
// ARG PARSER TESTS (args.go)
// =============================================================================

func TestArgParser_BasicParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantSub  string
		validate func(*testing.T, *ArgParser)
	}{
		{
			name:    "simple subcommand",
			args:    []string{"show"},
			wantSub: "show",
		},
		{
			name:    "subcommand with flag",
			args:    []string{"generate", "--count", "3"},
			wantSub: "generate",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("count") != "3" {
					t.Errorf("Flag(count) = %q, want %q", p.Flag("count"), "3")
				}
			},
		},
		{
			name:    "flag with equals",
			args:    []string{"generate", "--count=5"},
			wantSub: "generate",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("count") != "5" {
					t.Errorf("Flag(count) = %q, want %q", p.Flag("count"), "5")
				}
			},
		},
		{
			name:    "boolean flag",
			args:    []string{"show", "--json"},
			wantSub: "show",
			validate: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("json") {
					t.Error("BoolFlag(json) should be true")
				}
			},
		},
		{
			name:    "explicit boolean flag",
			args:    []string{"show", "--json=false"},
			wantSub: "show",
			validate: func(t *testing.T, p *ArgParser) {
				if p.BoolFlag("json") {
					t.Error("BoolFlag(json) should be false")
				}
			},
		},
		{
			name:    "multiple positionals",
			args:    []string{"set", "ui.theme", "dark"},
			wantSub: "set",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Positional(1) != "ui.theme" {
					t.Errorf("Positional(1) = %q, want ui.theme", p.Positional(1))
				}
				if p.Positional(2) != "dark" {
					t.Errorf("Positional(2) = %q, want dark", p.Positional(2))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewArgParser(tt.args)
			if p.Subcommand() != tt.wantSub {
				t.Errorf("Subcommand() = %q, want %q", p.Subcommand(), tt.wantSub)
			}
			if tt.validate != nil {
				tt.validate(t, p)
			}
		})
	}
}

func TestArgParser_FlagIntOrDefault(t *testing.T) {
	p := NewArgParser([]string{"--count", "7"})
	if got := p.FlagIntOrDefault("count", 1); got != 7 {
		t.Errorf("FlagIntOrDefault(count) = %d, want 7", got)
	}
	if got := p.FlagIntOrDefault("missing", 42); got != 42 {
		t.Errorf("FlagIntOrDefault(missing) = %d, want 42", got)
	}

	p = NewArgParser([]string{"--count", "notanumber"})
	if got := p.FlagIntOrDefault("count", 1); got != 1 {
		t.Errorf("FlagIntOrDefault(invalid) = %d, want default 1", got)
	}
}

func TestArgParser_EmptyArgs(t *testing.T) {
	p := NewArgParser([]string{})

	if p.Subcommand() != "" {
		t.Error("Empty args should yield empty subcommand")
	}
	if p.PositionalCount() != 0 {
		t.Error("Empty args should have no positionals")
	}
	if p.Flag("anything") != "" {
		t.Error("Empty args should have no flags")
	}
}

func TestArgParser_DoubleDashTerminator(t *testing.T) {
	p := NewArgParser([]string{"--json", "--", "-Abc123!?", "--count"})

	if !p.BoolFlag("json") {
		t.Error("flags before -- should still parse")
	}
	if p.BoolFlag("count") {
		t.Error("args after -- must not parse as flags")
	}
	if got := p.PositionalFrom(0); len(got) != 2 || got[0] != "-Abc123!?" || got[1] != "--count" {
		t.Errorf("positionals after -- = %v, want [-Abc123!? --count]", got)
	}
}

func TestParseBoolString(t *testing.T) {
	trueValues := []string{"true", "TRUE", "yes", "y", "1", "on"}
	for _, v := range trueValues {
		got, err := ParseBoolString(v)
		if err != nil || !got {
			t.Errorf("ParseBoolString(%q) = %v, %v; want true, nil", v, got, err)
		}
	}

	falseValues := []string{"false", "no", "n", "0", "off"}
	for _, v := range falseValues {
		got, err := ParseBoolString(v)
		if err != nil || got {
			t.Errorf("ParseBoolString(%q) = %v, %v; want false, nil", v, got, err)
		}
	}

	if _, err := ParseBoolString("maybe"); err == nil {
		t.Error("ParseBoolString(maybe) should fail")
	}
}

// =============================================================================
// COMMAND ARG PARSING TESTS (cli.go)
// =============================================================================

func TestParseCheckArgs(t *testing.T) {
	var args Args
	parseCheckArgs(&args, []string{"My", "pass", "--json"})

	if args.Password != "My pass" {
		t.Errorf("Password = %q, want %q", args.Password, "My pass")
	}
	if !args.JSON {
		t.Error("JSON flag should be set")
	}
}

func TestParseCheckArgs_LeadingDashPassword(t *testing.T) {
	var args Args
	parseCheckArgs(&args, []string{"--", "-Abc123!?"})

	if args.Password != "-Abc123!?" {
		t.Errorf("Password = %q, want %q", args.Password, "-Abc123!?")
	}
}

func TestParseGlobalFlags_DoubleDash(t *testing.T) {
	remaining, args := parseGlobalFlags([]string{"check", "--", "--json"})

	if args.JSON {
		t.Error("--json after -- is part of the password, not a flag")
	}
	if len(remaining) != 3 || remaining[1] != "--" || remaining[2] != "--json" {
		t.Errorf("remaining = %v, want [check -- --json]", remaining)
	}
}

func TestParseGenerateArgs(t *testing.T) {
	var args Args
	parseGenerateArgs(&args, []string{"--count", "3", "--copy"})

	if args.Count != 3 {
		t.Errorf("Count = %d, want 3", args.Count)
	}
	if !args.Copy {
		t.Error("Copy flag should be set")
	}

	// Count below 1 is clamped
	args = Args{}
	parseGenerateArgs(&args, []string{"--count", "0"})
	if args.Count != 1 {
		t.Errorf("Count = %d, want clamped to 1", args.Count)
	}
}

func TestParseConfigArgs(t *testing.T) {
	var args Args
	parseConfigArgs(&args, []string{"set", "ui.theme", "dark"})

	if args.Subcommand != "set" {
		t.Errorf("Subcommand = %q, want set", args.Subcommand)
	}
	if args.ConfigKey != "ui.theme" {
		t.Errorf("ConfigKey = %q, want ui.theme", args.ConfigKey)
	}
	if args.ConfigVal != "dark" {
		t.Errorf("ConfigVal = %q, want dark", args.ConfigVal)
	}
}

func TestParseGlobalFlags(t *testing.T) {
	remaining, args := parseGlobalFlags([]string{"--json", "check", "-q", "abc"})

	if !args.JSON {
		t.Error("JSON flag should be set")
	}
	if !args.Quiet {
		t.Error("Quiet flag should be set")
	}
	if len(remaining) != 2 || remaining[0] != "check" || remaining[1] != "abc" {
		t.Errorf("remaining = %v, want [check abc]", remaining)
	}
}

// =============================================================================
// CHECK COMMAND TESTS (check.go)
// =============================================================================

func TestHandleCheck_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     int
	}{
		{"strong password exits 0", "Password1!", 0},
		{"safe password exits 1", "Password1", 1},
		{"unsafe password exits 1", "abc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := Args{Password: tt.password, Quiet: true}
			if got := HandleCheck(args); got != tt.want {
				t.Errorf("HandleCheck(%q) = %d, want %d", tt.password, got, tt.want)
			}
		})
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/passcheck-tui/internal/password"
	"github.com/jeranaias/passcheck-tui/internal/ui/styles"
)

func TestStrengthMeterShowsLabel(t *testing.T) {
	meter := NewStrengthMeter(styles.NewTheme())

	tests := []struct {
		password string
		label    string
	}{
		{"", "unsafe"},
		{"Passw1", "safe"},
		{"Password1!", "strong"},
	}

	for _, tt := range tests {
		out := meter.Render(password.Evaluate(tt.password))
		if !strings.Contains(out, tt.label) {
			t.Errorf("Meter for %q should contain label %q, got %q", tt.password, tt.label, out)
		}
	}
}

func TestStrengthMeterNotEmpty(t *testing.T) {
	meter := NewStrengthMeter(styles.NewTheme())
	out := meter.Render(password.Evaluate("abc"))
	if out == "" {
		t.Error("Meter output should not be empty")
	}
}

func TestStrengthMeterNarrowWidth(t *testing.T) {
	meter := NewStrengthMeter(styles.NewTheme())
	meter.SetWidth(10)

	// Must still render something usable at very narrow widths
	out := meter.Render(password.Evaluate("Password1!"))
	if out == "" {
		t.Error("Meter should render at narrow widths")
	}
}

func TestSegmentWidthBounds(t *testing.T) {
	meter := NewStrengthMeter(styles.NewTheme())

	tests := []struct {
		width int
		total int
		want  int
	}{
		{80, 5, 6},  // wide terminals cap at 6
		{5, 5, 1},   // too narrow falls back to 1
		{24, 5, 3},  // (24-9)/5 = 3
	}

	for _, tt := range tests {
		meter.SetWidth(tt.width)
		if got := meter.segmentWidth(tt.total); got != tt.want {
			t.Errorf("segmentWidth at width %d = %d, want %d", tt.width, got, tt.want)
		}
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// THEME CREATION TESTS
// =============================================================================

func TestNewTheme(t *testing.T) {
	theme := NewTheme()

	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}

	// Verify styles are initialized by rendering a test string
	if theme.App.Render("test") == "" {
		t.Error("NewTheme() should initialize App style")
	}
}

func TestThemeInitStyles(t *testing.T) {
	theme := NewTheme()

	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Header", theme.Header},
		{"InputContainer", theme.InputContainer},
		{"RulePass", theme.RulePass},
		{"RuleFail", theme.RuleFail},
		{"MeterUnsafe", theme.MeterUnsafe},
		{"MeterStrong", theme.MeterStrong},
		{"StatusBar", theme.StatusBar},
		{"HelpBox", theme.HelpBox},
	}

	for _, s := range styles {
		// An uninitialized style would render to the empty string
		if s.style.Render("test") == "" {
			t.Errorf("%s style should be initialized", s.name)
		}
	}
}

// =============================================================================
// STRENGTH STYLE TESTS
// =============================================================================

func TestStrengthStyle(t *testing.T) {
	theme := NewTheme()

	tests := []struct {
		level string
		want  lipgloss.Style
	}{
		{"unsafe", theme.MeterUnsafe},
		{"safe", theme.MeterSafe},
		{"strong", theme.MeterStrong},
		{"garbage", theme.MeterUnsafe}, // unknown levels fall back to unsafe
	}

	for _, tt := range tests {
		got := theme.StrengthStyle(tt.level)
		if got.GetForeground() != tt.want.GetForeground() {
			t.Errorf("StrengthStyle(%q) foreground = %v, want %v",
				tt.level, got.GetForeground(), tt.want.GetForeground())
		}
	}
}

// =============================================================================
// LAYOUT MODE TESTS
// =============================================================================

func TestGetLayoutMode(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  LayoutMode
	}{
		{"very narrow", 20, LayoutNarrow},
		{"just below narrow threshold", 49, LayoutNarrow},
		{"narrow threshold", 50, LayoutMedium},
		{"typical terminal", 80, LayoutMedium},
		{"just below wide threshold", 89, LayoutMedium},
		{"wide threshold", 90, LayoutWide},
		{"ultrawide", 200, LayoutWide},
	}

	theme := NewTheme()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme.SetSize(tt.width, 24)
			if got := theme.GetLayoutMode(); got != tt.want {
				t.Errorf("GetLayoutMode() at width %d = %v, want %v", tt.width, got, tt.want)
			}
		})
	}
}

func TestSetSize(t *testing.T) {
	theme := NewTheme()
	theme.SetSize(120, 40)

	if theme.Width != 120 {
		t.Errorf("Width = %d, want 120", theme.Width)
	}
	if theme.Height != 40 {
		t.Errorf("Height = %d, want 40", theme.Height)
	}
}

// =============================================================================
// STATUS INDICATOR TESTS
// =============================================================================

func TestStatusIndicatorsAreASCII(t *testing.T) {
	indicators := []struct {
		name  string
		value string
	}{
		{"Pass", StatusIndicators.Pass},
		{"Fail", StatusIndicators.Fail},
		{"Error", StatusIndicators.Error},
		{"Warning", StatusIndicators.Warning},
		{"Info", StatusIndicators.Info},
		{"Success", StatusIndicators.Success},
	}

	for _, ind := range indicators {
		if ind.value == "" {
			t.Errorf("StatusIndicators.%s should not be empty", ind.name)
		}
		for _, r := range ind.value {
			if r > 127 {
				t.Errorf("StatusIndicators.%s contains non-ASCII rune %q", ind.name, r)
			}
		}
	}
}

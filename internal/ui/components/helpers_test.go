// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "testing"

func TestToStr(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{1, "1"},
		{5, "5"},
		{42, "42"},
		{100, "100"},
		{-7, "-7"},
	}

	for _, tc := range tests {
		result := toStr(tc.input)
		if result != tc.expected {
			t.Errorf("toStr(%d) = %s, expected %s", tc.input, result, tc.expected)
		}
	}
}

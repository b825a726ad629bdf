// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// EVALUATION TESTS
// =============================================================================

func TestEvaluate_KnownVectors(t *testing.T) {
	tests := []struct {
		name     string
		password string
		passed   int
		strength Strength
	}{
		{"empty string fails everything", "", 0, StrengthUnsafe},
		{"all five rules", "Password1!", 5, StrengthStrong},
		{"exactly 8 lowercase", "password", 2, StrengthUnsafe},
		{"7 lowercase misses length", "passwor", 1, StrengthUnsafe},
		{"missing symbol", "Password1", 4, StrengthSafe},
		{"three rules is safe", "passwor1", 3, StrengthSafe},
		{"short but all classes", "Aa1!", 4, StrengthSafe},
		{"digits only", "12345678", 2, StrengthUnsafe},
		{"whitespace is not a symbol", "Pass word 12", 4, StrengthSafe},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev := Evaluate(tc.password)
			require.Len(t, ev.Results, len(Rules))
			require.Equal(t, tc.passed, ev.Passed, "pass count for %q", tc.password)
			require.Equal(t, tc.strength, ev.Strength, "strength for %q", tc.password)
		})
	}
}

func TestEvaluate_PerRuleFailures(t *testing.T) {
	// Each candidate is built to fail exactly one rule.
	tests := []struct {
		name      string
		password  string
		failIndex int
	}{
		{"too short", "Aa1!Aa1", 0},
		{"no uppercase", "aaaa1111!", 1},
		{"no lowercase", "AAAA1111!", 2},
		{"no digit", "AAAAaaaa!", 3},
		{"no symbol", "AAAAaaaa1", 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev := Evaluate(tc.password)
			for i, res := range ev.Results {
				if i == tc.failIndex {
					require.False(t, res.Passed, "rule %q should fail for %q", res.Label, tc.password)
				} else {
					require.True(t, res.Passed, "rule %q should pass for %q", res.Label, tc.password)
				}
			}
			require.Equal(t, StrengthSafe, ev.Strength)
		})
	}
}

func TestEvaluate_LengthRuleCountsRunes(t *testing.T) {
	// 8 multi-byte runes satisfy the length rule even though the byte
	// count is much larger than 8 would suggest.
	ev := Evaluate("ぱすわーどぱすわ")
	require.True(t, ev.Results[0].Passed, "length rule should count runes, not bytes")

	// 7 runes fail regardless of byte length.
	ev = Evaluate("ぱすわーどぱす")
	require.False(t, ev.Results[0].Passed)
}

func TestEvaluate_ShortStringsAlwaysFailLength(t *testing.T) {
	for _, s := range []string{"", "a", "Aa1!", "Aa1!Aa1"} {
		require.False(t, Evaluate(s).Results[0].Passed, "length rule must fail for %q", s)
	}
}

func TestEvaluate_SymbolSet(t *testing.T) {
	// Every character of the documented symbol set satisfies the symbol rule
	// on its own.
	for _, r := range `!@#$%^&*(),.?":{}|<>` {
		ev := Evaluate(string(r))
		require.True(t, ev.Results[4].Passed, "symbol rule should pass for %q", string(r))
	}

	// Characters outside the set do not.
	for _, s := range []string{"-", "_", "+", "=", ";", "'", "a", "Z", "7", " "} {
		ev := Evaluate(s)
		require.False(t, ev.Results[4].Passed, "symbol rule should fail for %q", s)
	}
}

func TestEvaluate_ResultsFollowRuleOrder(t *testing.T) {
	ev := Evaluate("anything")
	require.Len(t, ev.Results, len(Rules))
	for i, rule := range Rules {
		require.Equal(t, rule.Label, ev.Results[i].Label)
	}
}

func TestClassify_Thresholds(t *testing.T) {
	want := map[int]Strength{
		0: StrengthUnsafe,
		1: StrengthUnsafe,
		2: StrengthUnsafe,
		3: StrengthSafe,
		4: StrengthSafe,
		5: StrengthStrong,
	}
	for passed, strength := range want {
		require.Equal(t, strength, classify(passed), "classify(%d)", passed)
	}
}

func TestStrength_String(t *testing.T) {
	require.Equal(t, "unsafe", StrengthUnsafe.String())
	require.Equal(t, "safe", StrengthSafe.String())
	require.Equal(t, "strong", StrengthStrong.String())
}

func TestEvaluate_UnicodeIsTotal(t *testing.T) {
	// Evaluate must never panic or misbehave on arbitrary input.
	inputs := []string{
		strings.Repeat("🔒", 20),
		"Päss wörd 1!",
		"\x00\x01\x02",
		strings.Repeat("x", 1<<16),
	}
	for _, s := range inputs {
		ev := Evaluate(s)
		require.Len(t, ev.Results, len(Rules))
	}
}

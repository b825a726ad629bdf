// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package password implements the rule set and strength classification
// behind the passcheck UI, along with a generator that always produces
// passwords satisfying every rule.
//
// Both entry points are pure functions: Evaluate is total over all strings
// (including empty and multi-byte input) and can never fail; Generate always
// terminates with a valid result. The UI layer calls them synchronously on
// every keystroke or button press.
package password

import (
	"strings"
	"unicode/utf8"
)

// =============================================================================
// CHARACTER CLASSES
// =============================================================================

const (
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars = "0123456789"

	// symbolChars is the literal symbol set a password must draw from to
	// satisfy the symbol rule. Fixed; not configurable.
	symbolChars = `!@#$%^&*(),.?":{}|<>`

	// MinLength is the minimum character count the length rule accepts.
	// Counted in runes so multi-byte input is not penalized.
	MinLength = 8
)

// =============================================================================
// STRENGTH LEVELS
// =============================================================================

// Strength is the coarse classification derived from the rule pass count.
type Strength int

const (
	StrengthUnsafe Strength = iota // 0-2 rules satisfied
	StrengthSafe                   // 3-4 rules satisfied
	StrengthStrong                 // all 5 rules satisfied
)

// String returns the lowercase display name of the strength level.
func (s Strength) String() string {
	switch s {
	case StrengthStrong:
		return "strong"
	case StrengthSafe:
		return "safe"
	default:
		return "unsafe"
	}
}

// =============================================================================
// RULES
// =============================================================================

// Rule pairs a human-readable label with a predicate over a candidate
// password. Rules are immutable after package init.
type Rule struct {
	Label string
	Check func(password string) bool
}

// Rules is the fixed rule set, in display order. The order matters only for
// presentation; classification depends solely on how many rules pass.
var Rules = []Rule{
	{Label: "At least 8 characters", Check: hasMinLength},
	{Label: "Contains an uppercase letter", Check: containsAny(upperChars)},
	{Label: "Contains a lowercase letter", Check: containsAny(lowerChars)},
	{Label: "Contains a number", Check: containsAny(digitChars)},
	{Label: "Contains a special character", Check: containsAny(symbolChars)},
}

func hasMinLength(password string) bool {
	return utf8.RuneCountInString(password) >= MinLength
}

// containsAny builds a predicate that passes when the password contains at
// least one character from set.
func containsAny(set string) func(string) bool {
	return func(password string) bool {
		return strings.ContainsAny(password, set)
	}
}

// =============================================================================
// EVALUATION
// =============================================================================

// RuleResult records the outcome of a single rule.
type RuleResult struct {
	Label  string `json:"label"`
	Passed bool   `json:"passed"`
}

// Evaluation is the outcome of checking a candidate against every rule.
// Results holds one entry per rule, in rule order.
type Evaluation struct {
	Results  []RuleResult `json:"results"`
	Passed   int          `json:"passed"`
	Strength Strength     `json:"-"`
}

// Evaluate runs every rule against password and classifies the result.
// It is total: any string, including the empty string, yields a well-formed
// Evaluation with exactly len(Rules) results.
func Evaluate(password string) Evaluation {
	ev := Evaluation{Results: make([]RuleResult, 0, len(Rules))}
	for _, rule := range Rules {
		passed := rule.Check(password)
		if passed {
			ev.Passed++
		}
		ev.Results = append(ev.Results, RuleResult{Label: rule.Label, Passed: passed})
	}
	ev.Strength = classify(ev.Passed)
	return ev
}

// classify maps a pass count to a strength level: 0-2 unsafe, 3-4 safe,
// 5 strong.
func classify(passed int) Strength {
	switch {
	case passed <= 2:
		return StrengthUnsafe
	case passed < len(Rules):
		return StrengthSafe
	default:
		return StrengthStrong
	}
}

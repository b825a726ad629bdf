// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package password

import "math/rand/v2"

// =============================================================================
// RANDOMNESS SOURCE
// =============================================================================

// Source supplies uniform random integers for the generator. It exists so
// the randomness backend can be swapped (for deterministic tests, or for a
// crypto/rand implementation) without touching the rule logic.
type Source interface {
	// IntN returns a uniform random int in [0, n). n must be > 0.
	IntN(n int) int
}

// mathSource is the default Source, backed by math/rand/v2.
//
// SECURITY: This is NOT a cryptographically secure source. Generated
// passwords are adequate for the interactive checker widget, but must not
// be used as production secrets without substituting a crypto-backed Source.
// The non-crypto default is deliberate and must not be silently upgraded.
type mathSource struct{}

func (mathSource) IntN(n int) int { return rand.IntN(n) }

// =============================================================================
// GENERATOR
// =============================================================================

// Generated passwords are always GeneratedLength characters: one mandatory
// character per class plus extraCount drawn from the union alphabet.
// Both are fixed constants, not configuration knobs.
const (
	// GeneratedLength is the exact length of every generated password.
	GeneratedLength = 12
	extraCount      = 8
)

// unionChars is the concatenation of all four character classes, used for
// the non-mandatory positions.
const unionChars = lowerChars + upperChars + digitChars + symbolChars

// mandatoryClasses lists the classes that contribute exactly one guaranteed
// character each, so the output satisfies every rule with probability 1.
var mandatoryClasses = [...]string{lowerChars, upperChars, digitChars, symbolChars}

// Generator produces random passwords that satisfy every rule in Rules.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator backed by the default non-crypto Source.
func NewGenerator() *Generator {
	return &Generator{src: mathSource{}}
}

// NewGeneratorWithSource returns a Generator that draws randomness from src.
func NewGeneratorWithSource(src Source) *Generator {
	return &Generator{src: src}
}

// Generate returns a GeneratedLength-character password containing at least
// one character from each class. The mandatory characters are drawn first,
// the remaining positions are filled uniformly from the union alphabet, and
// the whole buffer is shuffled so the guaranteed characters do not cluster
// at the front. All classes are single-byte ASCII, so byte operations are
// safe here.
func (g *Generator) Generate() string {
	buf := make([]byte, 0, GeneratedLength)
	for _, class := range mandatoryClasses {
		buf = append(buf, class[g.src.IntN(len(class))])
	}
	for i := 0; i < extraCount; i++ {
		buf = append(buf, unionChars[g.src.IntN(len(unionChars))])
	}
	g.shuffle(buf)
	return string(buf)
}

// shuffle performs a Fisher-Yates shuffle of buf in place.
func (g *Generator) shuffle(buf []byte) {
	for i := len(buf) - 1; i > 0; i-- {
		j := g.src.IntN(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}
}

// defaultGenerator backs the package-level Generate convenience.
var defaultGenerator = NewGenerator()

// Generate produces a password using the default generator. The result
// always evaluates to StrengthStrong.
func Generate() string {
	return defaultGenerator.Generate()
}

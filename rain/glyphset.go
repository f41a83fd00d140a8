package rain

import (
	"math/rand"

	"github.com/lixenwraith/matrix-rain/constants"
)

// GlyphSet is an immutable pool of displayable characters, combining the
// katakana and ASCII alphabets. Immutable after construction.
type GlyphSet struct {
	glyphs []rune
}

// NewGlyphSet builds the combined glyph pool
func NewGlyphSet() *GlyphSet {
	return &GlyphSet{
		glyphs: []rune(constants.Katakana + constants.ASCIIChars),
	}
}

// Len returns the number of glyphs in the pool
func (g *GlyphSet) Len() int {
	return len(g.glyphs)
}

// Pick returns one glyph chosen uniformly from the pool
func (g *GlyphSet) Pick(rng *rand.Rand) rune {
	return g.glyphs[rng.Intn(len(g.glyphs))]
}

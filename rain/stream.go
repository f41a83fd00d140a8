package rain

import (
	"math/rand"

	"github.com/lixenwraith/matrix-rain/constants"
)

// Color identifies the brightness tier of a rendered glyph
type Color uint8

const (
	// ColorHead is the leading glyph (bright white)
	ColorHead Color = iota
	// ColorBright is the upper third of the trail
	ColorBright
	// ColorMedium is the middle third of the trail
	ColorMedium
	// ColorDim is the tail end of the trail
	ColorDim
)

// Cell is one visible glyph with its screen position and brightness tier
type Cell struct {
	X, Y  int
	Rune  rune
	Color Color
}

// Stream is a single falling rain column. The column, speed and trail
// length are fixed at creation; only the head position and the trail
// glyphs change over the stream's life.
type Stream struct {
	column       int
	screenHeight int
	head         float64
	speed        float64
	trailLength  int
	glyphs       []rune
	alive        bool

	set *GlyphSet
	rng *rand.Rand
}

// NewStream creates a stream at the given column with a randomly chosen
// speed tier, trail length and initial glyphs. The head starts at row 0.
func NewStream(column, screenHeight int, set *GlyphSet, rng *rand.Rand) *Stream {
	trailLength := constants.TrailLengthMin + rng.Intn(constants.TrailLengthMax-constants.TrailLengthMin+1)
	glyphs := make([]rune, trailLength)
	for i := range glyphs {
		glyphs[i] = set.Pick(rng)
	}

	return &Stream{
		column:       column,
		screenHeight: screenHeight,
		speed:        constants.SpeedTiers[rng.Intn(len(constants.SpeedTiers))],
		trailLength:  trailLength,
		glyphs:       glyphs,
		alive:        true,
		set:          set,
		rng:          rng,
	}
}

// Update advances the head by speed*dt. The stream dies once the entire
// trail, head to tail, has scrolled past the bottom edge; that is the
// sole expiry condition.
func (s *Stream) Update(dt float64) {
	s.head += s.speed * dt

	if s.head-float64(s.trailLength) > float64(s.screenHeight) {
		s.alive = false
	}
}

// Mutate replaces each trail glyph independently with probability
// MutationRate. Memoryless: there is no per-position cooldown.
func (s *Stream) Mutate() {
	for i := range s.glyphs {
		if s.rng.Float64() < constants.MutationRate {
			s.glyphs[i] = s.set.Pick(s.rng)
		}
	}
}

// Alive reports whether any part of the stream can still become visible
func (s *Stream) Alive() bool {
	return s.alive
}

// Column returns the stream's fixed horizontal position
func (s *Stream) Column() int {
	return s.column
}

// VisibleCells appends the on-screen cells of the trail to dst and
// returns the extended slice. Offset 0 is the head; rows outside
// [0, screenHeight) are clipped.
func (s *Stream) VisibleCells(dst []Cell) []Cell {
	headRow := int(s.head)

	for i := 0; i < s.trailLength; i++ {
		y := headRow - i
		if y < 0 || y >= s.screenHeight {
			continue
		}
		dst = append(dst, Cell{
			X:     s.column,
			Y:     y,
			Rune:  s.glyphs[i],
			Color: colorForOffset(i, s.trailLength),
		})
	}

	return dst
}

// colorForOffset grades brightness from head to tail regardless of
// trail length
func colorForOffset(offset, trailLength int) Color {
	if offset == 0 {
		return ColorHead
	}
	ratio := float64(offset) / float64(trailLength)
	switch {
	case ratio < 0.33:
		return ColorBright
	case ratio < 0.66:
		return ColorMedium
	default:
		return ColorDim
	}
}

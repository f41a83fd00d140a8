package rain

import (
	"math/rand"

	"github.com/lixenwraith/matrix-rain/constants"
)

// Field owns the live streams and keeps column occupancy at the target
// density, spawning replacements as streams scroll off the bottom.
// Occupancy is tracked in a fixed-size array indexed by column so slot
// selection is deterministic for a seeded random source.
type Field struct {
	width  int
	height int

	streams       []*Stream
	occupied      []bool
	occupiedCount int

	set *GlyphSet
	rng *rand.Rand
}

// NewField creates a field for the given screen size and immediately
// populates it to the target density. Initial streams get heads
// randomized in [-trailLength, height) so the first frame already shows
// staggered depths.
func NewField(width, height int, set *GlyphSet, rng *rand.Rand) *Field {
	f := &Field{
		width:    width,
		height:   height,
		occupied: make([]bool, width),
		set:      set,
		rng:      rng,
	}
	f.populate()
	return f
}

// targetCount is the density set-point, recomputed from the width
func (f *Field) targetCount() int {
	return int(float64(f.width) * constants.ColumnDensity)
}

// populate fills the field to the target density in one pass, using an
// unbiased permutation of all columns for slot selection
func (f *Field) populate() {
	perm := f.rng.Perm(f.width)
	for _, x := range perm[:f.targetCount()] {
		s := NewStream(x, f.height, f.set, f.rng)
		s.head = -float64(s.trailLength) + f.rng.Float64()*float64(f.height+s.trailLength)
		f.add(s)
	}
}

func (f *Field) add(s *Stream) {
	f.streams = append(f.streams, s)
	f.occupied[s.column] = true
	f.occupiedCount++
}

// spawn creates one stream at a uniformly-chosen free column, entering
// at the top. Returns false when every column is occupied.
func (f *Field) spawn() bool {
	free := make([]int, 0, f.width-f.occupiedCount)
	for x, used := range f.occupied {
		if !used {
			free = append(free, x)
		}
	}
	if len(free) == 0 {
		return false
	}

	f.add(NewStream(free[f.rng.Intn(len(free))], f.height, f.set, f.rng))
	return true
}

// Update advances and mutates every stream, retires the ones whose
// trails have left the screen, and spawns replacements until occupancy
// is back at the target (or no column is free). Idempotent at target.
// Returns the number of streams spawned this tick.
func (f *Field) Update(dt float64) int {
	for _, s := range f.streams {
		s.Update(dt)
		s.Mutate()
	}

	live := f.streams[:0]
	for _, s := range f.streams {
		if s.alive {
			live = append(live, s)
			continue
		}
		f.occupied[s.column] = false
		f.occupiedCount--
	}
	f.streams = live

	spawned := 0
	for f.occupiedCount < f.targetCount() {
		if !f.spawn() {
			break
		}
		spawned++
	}
	return spawned
}

// VisibleCells appends every live stream's visible cells to dst in
// stream insertion order and returns the extended slice
func (f *Field) VisibleCells(dst []Cell) []Cell {
	for _, s := range f.streams {
		dst = s.VisibleCells(dst)
	}
	return dst
}

// StreamCount returns the number of live streams
func (f *Field) StreamCount() int {
	return len(f.streams)
}

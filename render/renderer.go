package render

import "github.com/lixenwraith/matrix-rain/rain"

// cell is one slot of the frame grid. set distinguishes a painted cell
// from background.
type cell struct {
	ch    rune
	color rain.Color
	set   bool
}

// Renderer converts the current visible-cell set into the minimal list
// of device writes by diffing against the previously painted frame.
// Frames are row-major grids sized once at construction, so diff
// iteration order is deterministic.
type Renderer struct {
	device Device
	width  int
	height int

	prev []cell
	cur  []cell
}

// NewRenderer creates a renderer for a fixed screen size. The first
// Render call paints against an empty previous frame.
func NewRenderer(device Device, width, height int) *Renderer {
	return &Renderer{
		device: device,
		width:  width,
		height: height,
		prev:   make([]cell, width*height),
		cur:    make([]cell, width*height),
	}
}

// Render diffs cells against the previous frame and emits one erase per
// vanished coordinate and one write per new or changed coordinate,
// then flushes the device. Applied to the previously painted screen,
// the writes yield the same display as a full redraw. The bottom-right
// cell is reserved: writing it can scroll the terminal.
func (r *Renderer) Render(cells []rain.Cell) error {
	for i := range r.cur {
		r.cur[i] = cell{}
	}

	// Last writer wins on transient overlap
	for _, c := range cells {
		if c.X < 0 || c.X >= r.width || c.Y < 0 || c.Y >= r.height {
			continue
		}
		if c.X == r.width-1 && c.Y == r.height-1 {
			continue
		}
		r.cur[c.Y*r.width+c.X] = cell{ch: c.Rune, color: c.Color, set: true}
	}

	for i, p := range r.prev {
		if p.set && !r.cur[i].set {
			r.device.Erase(i%r.width, i/r.width)
		}
	}

	for i, c := range r.cur {
		if c.set && c != r.prev[i] {
			r.device.Put(i%r.width, i/r.width, c.ch, c.color)
		}
	}

	r.prev, r.cur = r.cur, r.prev
	return r.device.Flush()
}

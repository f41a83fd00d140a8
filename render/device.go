package render

import "github.com/lixenwraith/matrix-rain/rain"

// Device is the narrow output surface the renderer writes through.
// A terminal-backed implementation draws to the screen; tests use a
// recording implementation to assert the exact write sequence.
type Device interface {
	// Put draws a colored glyph at the given cell
	Put(x, y int, ch rune, color rain.Color)

	// Erase blanks the given cell
	Erase(x, y int)

	// Flush commits queued writes to the display
	Flush() error
}

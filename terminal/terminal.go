package terminal

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/matrix-rain/constants"
	"github.com/lixenwraith/matrix-rain/rain"
)

// tierStyles maps brightness tiers to the rain palette. Truecolor
// values; tcell downsamples for 256-color terminals.
var tierStyles = [...]tcell.Style{
	rain.ColorHead:   tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 255)),
	rain.ColorBright: tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 0)),
	rain.ColorMedium: tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 215, 0)),
	rain.ColorDim:    tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 175, 0)),
}

// Detect validates the host terminal before any mode is mutated: stdout
// must be a TTY of at least MinWidth x MinHeight. Each failure gets a
// distinct error. The size is read once; resizes during the run are not
// re-queried.
func Detect() (width, height int, err error) {
	fd := int(os.Stdout.Fd())

	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("stdout is not a terminal")
	}

	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("cannot determine terminal size: %w", err)
	}

	if width < constants.MinWidth || height < constants.MinHeight {
		return 0, 0, fmt.Errorf("terminal too small: %dx%d (minimum %dx%d)",
			width, height, constants.MinWidth, constants.MinHeight)
	}

	return width, height, nil
}

// Screen owns the terminal mode lifecycle (raw input, alternate screen,
// hidden cursor) and implements render.Device on top of tcell.
type Screen struct {
	screen tcell.Screen
}

// New acquires the terminal: raw mode, alternate screen buffer, hidden
// cursor, cleared screen. Pair with Fini on every exit path.
func New() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	screen.HideCursor()
	screen.Clear()

	return &Screen{screen: screen}, nil
}

// Fini restores the terminal modes in reverse acquisition order.
// Best effort: failures are swallowed so they never mask the error
// that ended the run.
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Size returns the terminal dimensions as seen by tcell
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Put draws a colored glyph at the given cell
func (s *Screen) Put(x, y int, ch rune, color rain.Color) {
	s.screen.SetContent(x, y, ch, nil, tierStyles[color])
}

// Erase blanks the given cell
func (s *Screen) Erase(x, y int) {
	s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
}

// Flush commits queued writes to the display
func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}

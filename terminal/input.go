package terminal

import "github.com/gdamore/tcell/v2"

// Poll consumes at most one pending event without blocking. It reports
// quit for q, Esc or Ctrl+C; every other event is discarded. Further
// queued events stay pending and are seen on subsequent ticks, so a
// quit key buffered during a slow tick is still honored on the very
// next one.
func (s *Screen) Poll() (quit bool, err error) {
	if !s.screen.HasPendingEvent() {
		return false, nil
	}

	switch ev := s.screen.PollEvent().(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true, nil
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true, nil
		}
	case *tcell.EventError:
		return false, ev
	}

	return false, nil
}

package engine

import (
	"time"

	"github.com/lixenwraith/matrix-rain/constants"
	"github.com/lixenwraith/matrix-rain/rain"
)

// Input is polled once per tick without blocking. quit reports an
// exit-intent key press; err is a fatal input failure.
type Input interface {
	Poll() (quit bool, err error)
}

// Renderer paints the current visible-cell set
type Renderer interface {
	Render(cells []rain.Cell) error
}

// Sound is notified when a replacement stream enters the field.
// Optional collaborator; a nil Sound disables audio.
type Sound interface {
	SpawnTone()
}

// Loop drives the fixed-target-rate tick cycle: poll input, update the
// field, render, sleep away the remaining frame budget. Single thread
// of control; the pacing sleep is the only suspension point.
type Loop struct {
	field    *rain.Field
	renderer Renderer
	input    Input
	sound    Sound

	frameTime time.Duration
	now       func() time.Time
	sleep     func(time.Duration)

	scratch []rain.Cell
}

// NewLoop wires the tick cycle. sound may be nil.
func NewLoop(field *rain.Field, renderer Renderer, input Input, sound Sound) *Loop {
	return &Loop{
		field:     field,
		renderer:  renderer,
		input:     input,
		sound:     sound,
		frameTime: constants.FrameTime,
		now:       time.Now,
		sleep:     time.Sleep,
	}
}

// Run ticks until a quit key is seen or an I/O error surfaces from
// input or rendering. Errors are returned as-is; there are no retries.
// A quit request is only observed at the top of a tick, so cleanup
// always happens between complete simulation steps.
func (l *Loop) Run() error {
	last := l.now()

	for {
		start := l.now()
		// Unclamped: a suspended process yields one large step on resume
		dt := start.Sub(last).Seconds()

		quit, err := l.input.Poll()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		if l.field.Update(dt) > 0 && l.sound != nil {
			l.sound.SpawnTone()
		}

		l.scratch = l.field.VisibleCells(l.scratch[:0])
		if err := l.renderer.Render(l.scratch); err != nil {
			return err
		}

		// Pace to the target rate; under load the loop just runs slower
		if remaining := l.frameTime - l.now().Sub(start); remaining > 0 {
			l.sleep(remaining)
		}
		last = start
	}
}

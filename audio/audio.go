package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// toneFreq is low enough to sit under the animation rather than ping
	toneFreq     = 220.0
	toneDuration = 40 * time.Millisecond

	// minToneGap rate-limits spawn tones during refill bursts
	minToneGap = 150 * time.Millisecond

	// toneGain attenuates to roughly 20% amplitude
	toneGain = -0.8
)

// Player emits a short quiet tone when a replacement stream enters the
// field. Audio is best effort: if no output device is available the
// player is disabled and every method is a no-op.
type Player struct {
	enabled  bool
	lastTone time.Time
}

// NewPlayer initializes the speaker with a 100ms buffer. On failure it
// returns a disabled player; the animation runs without sound.
func NewPlayer() *Player {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}
	}
	return &Player{enabled: true}
}

// SpawnTone plays one attenuated sine blip, at most once per minToneGap
func (p *Player) SpawnTone() {
	if !p.enabled {
		return
	}

	now := time.Now()
	if now.Sub(p.lastTone) < minToneGap {
		return
	}
	p.lastTone = now

	sine, err := generators.SineTone(sampleRate, toneFreq)
	if err != nil {
		return
	}
	speaker.Play(&effects.Gain{
		Streamer: beep.Take(sampleRate.N(toneDuration), sine),
		Gain:     toneGain,
	})
}

// Close releases the speaker
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
	}
}

package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/matrix-rain/audio"
	"github.com/lixenwraith/matrix-rain/engine"
	"github.com/lixenwraith/matrix-rain/rain"
	"github.com/lixenwraith/matrix-rain/render"
	"github.com/lixenwraith/matrix-rain/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Environment checks run before any terminal mode is mutated, so
	// failure needs no cleanup
	width, height, err := terminal.Detect()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set up terminal: %v\n", err)
		return 1
	}

	// Restore the terminal before printing a crash, otherwise the
	// stack trace vanishes with the alternate screen
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "Error: panic: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	sound := audio.NewPlayer()
	defer sound.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	field := rain.NewField(width, height, rain.NewGlyphSet(), rng)
	renderer := render.NewRenderer(screen, width, height)

	err = engine.NewLoop(field, renderer, screen, sound).Run()

	// Release modes before touching stderr; release failures stay
	// swallowed so they never mask the run's own error
	screen.Fini()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

package render

import (
	"errors"
	"testing"

	"github.com/lixenwraith/matrix-rain/rain"
)

type writeOp struct {
	erase bool
	x, y  int
	ch    rune
	color rain.Color
}

// recordingDevice captures the exact write sequence for assertions
type recordingDevice struct {
	ops      []writeOp
	flushes  int
	flushErr error
}

func (d *recordingDevice) Put(x, y int, ch rune, color rain.Color) {
	d.ops = append(d.ops, writeOp{x: x, y: y, ch: ch, color: color})
}

func (d *recordingDevice) Erase(x, y int) {
	d.ops = append(d.ops, writeOp{erase: true, x: x, y: y})
}

func (d *recordingDevice) Flush() error {
	d.flushes++
	return d.flushErr
}

func (d *recordingDevice) reset() {
	d.ops = d.ops[:0]
}

func TestFirstFramePaintsEveryCell(t *testing.T) {
	dev := &recordingDevice{}
	r := NewRenderer(dev, 20, 10)

	cells := []rain.Cell{
		{X: 3, Y: 4, Rune: 'ア', Color: rain.ColorHead},
		{X: 3, Y: 3, Rune: 'k', Color: rain.ColorBright},
	}
	if err := r.Render(cells); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(dev.ops) != 2 {
		t.Fatalf("Expected 2 writes, got %d", len(dev.ops))
	}
	for _, op := range dev.ops {
		if op.erase {
			t.Errorf("Expected no erases on first frame, got one at (%d,%d)", op.x, op.y)
		}
	}
	if dev.flushes != 1 {
		t.Errorf("Expected 1 flush, got %d", dev.flushes)
	}
}

func TestUnchangedCellEmitsNoWrite(t *testing.T) {
	dev := &recordingDevice{}
	r := NewRenderer(dev, 20, 10)

	cells := []rain.Cell{{X: 5, Y: 5, Rune: 'Z', Color: rain.ColorMedium}}
	if err := r.Render(cells); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	dev.reset()
	if err := r.Render(cells); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(dev.ops) != 0 {
		t.Errorf("Expected no writes for an unchanged frame, got %d", len(dev.ops))
	}
	if dev.flushes != 2 {
		t.Errorf("Expected a flush per render, got %d", dev.flushes)
	}
}

func TestChangedCellRewritten(t *testing.T) {
	tests := []struct {
		name   string
		before rain.Cell
		after  rain.Cell
	}{
		{
			"Glyph change",
			rain.Cell{X: 2, Y: 2, Rune: 'a', Color: rain.ColorDim},
			rain.Cell{X: 2, Y: 2, Rune: 'b', Color: rain.ColorDim},
		},
		{
			"Color change only",
			rain.Cell{X: 2, Y: 2, Rune: 'a', Color: rain.ColorHead},
			rain.Cell{X: 2, Y: 2, Rune: 'a', Color: rain.ColorBright},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := &recordingDevice{}
			r := NewRenderer(dev, 20, 10)

			if err := r.Render([]rain.Cell{tt.before}); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			dev.reset()
			if err := r.Render([]rain.Cell{tt.after}); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if len(dev.ops) != 1 {
				t.Fatalf("Expected exactly 1 write, got %d", len(dev.ops))
			}
			op := dev.ops[0]
			if op.erase {
				t.Fatalf("Expected a put, got an erase")
			}
			if op.ch != tt.after.Rune || op.color != tt.after.Color {
				t.Errorf("Expected write %q/%d, got %q/%d", tt.after.Rune, tt.after.Color, op.ch, op.color)
			}
		})
	}
}

func TestVanishedCellErasedOnce(t *testing.T) {
	dev := &recordingDevice{}
	r := NewRenderer(dev, 20, 10)

	if err := r.Render([]rain.Cell{{X: 8, Y: 1, Rune: 'x', Color: rain.ColorDim}}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	dev.reset()
	if err := r.Render(nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(dev.ops) != 1 {
		t.Fatalf("Expected exactly 1 erase, got %d writes", len(dev.ops))
	}
	if op := dev.ops[0]; !op.erase || op.x != 8 || op.y != 1 {
		t.Errorf("Expected erase at (8,1), got %+v", op)
	}

	// A third empty frame must stay silent
	dev.reset()
	if err := r.Render(nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(dev.ops) != 0 {
		t.Errorf("Expected no writes once erased, got %d", len(dev.ops))
	}
}

func TestMovedCellErasedAndRedrawn(t *testing.T) {
	dev := &recordingDevice{}
	r := NewRenderer(dev, 20, 10)

	if err := r.Render([]rain.Cell{{X: 4, Y: 6, Rune: 'ネ', Color: rain.ColorHead}}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	dev.reset()
	if err := r.Render([]rain.Cell{{X: 4, Y: 7, Rune: 'ネ', Color: rain.ColorHead}}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(dev.ops) != 2 {
		t.Fatalf("Expected an erase and a put, got %d writes", len(dev.ops))
	}
	if op := dev.ops[0]; !op.erase || op.x != 4 || op.y != 6 {
		t.Errorf("Expected erase at (4,6) first, got %+v", op)
	}
	if op := dev.ops[1]; op.erase || op.x != 4 || op.y != 7 {
		t.Errorf("Expected put at (4,7) second, got %+v", op)
	}
}

func TestBottomRightReserved(t *testing.T) {
	dev := &recordingDevice{}
	r := NewRenderer(dev, 20, 10)

	cells := []rain.Cell{
		{X: 19, Y: 9, Rune: 'Q', Color: rain.ColorHead}, // reserved corner
		{X: 19, Y: 8, Rune: 'w', Color: rain.ColorDim},
		{X: 18, Y: 9, Rune: 'e', Color: rain.ColorDim},
	}
	if err := r.Render(cells); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(dev.ops) != 2 {
		t.Fatalf("Expected 2 writes, got %d", len(dev.ops))
	}
	for _, op := range dev.ops {
		if op.x == 19 && op.y == 9 {
			t.Errorf("Expected the bottom-right cell to never be written")
		}
	}
}

func TestOutOfBoundsCellsClipped(t *testing.T) {
	dev := &recordingDevice{}
	r := NewRenderer(dev, 20, 10)

	cells := []rain.Cell{
		{X: -1, Y: 5, Rune: 'a', Color: rain.ColorDim},
		{X: 20, Y: 5, Rune: 'b', Color: rain.ColorDim},
		{X: 5, Y: -1, Rune: 'c', Color: rain.ColorDim},
		{X: 5, Y: 10, Rune: 'd', Color: rain.ColorDim},
	}
	if err := r.Render(cells); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(dev.ops) != 0 {
		t.Errorf("Expected out-of-bounds cells to be dropped, got %d writes", len(dev.ops))
	}
}

func TestOverlapLastWriterWins(t *testing.T) {
	dev := &recordingDevice{}
	r := NewRenderer(dev, 20, 10)

	cells := []rain.Cell{
		{X: 9, Y: 3, Rune: 'a', Color: rain.ColorDim},
		{X: 9, Y: 3, Rune: 'z', Color: rain.ColorHead},
	}
	if err := r.Render(cells); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(dev.ops) != 1 {
		t.Fatalf("Expected a single write for an overlapped cell, got %d", len(dev.ops))
	}
	if op := dev.ops[0]; op.ch != 'z' || op.color != rain.ColorHead {
		t.Errorf("Expected the later cell to win, got %q/%d", op.ch, op.color)
	}
}

func TestFlushErrorPropagates(t *testing.T) {
	wantErr := errors.New("device gone")
	dev := &recordingDevice{flushErr: wantErr}
	r := NewRenderer(dev, 20, 10)

	if err := r.Render(nil); !errors.Is(err, wantErr) {
		t.Errorf("Expected flush error to propagate, got %v", err)
	}
}

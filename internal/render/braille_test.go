package render

import (
	"strings"
	"testing"

	"github.com/san-kum/lifelab/internal/life"
)

func TestCanvasEmpty(t *testing.T) {
	c := NewCanvas(3, 2)
	out := c.String()

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		for _, r := range line {
			if r != 0x2800 {
				t.Errorf("empty canvas should hold blank braille, got %q", r)
			}
		}
	}
}

func TestCanvasSetDot(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("top-left dot: got %U, want U+2801", c.Grid[0][0])
	}

	c.Set(1, 3)
	if c.Grid[0][0]&0x80 == 0 {
		t.Error("bottom-right dot of the first cell not set")
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Set(-1, 0)
	c.Set(0, -2)
	c.Set(2, 0)
	c.Set(0, 4)
	if c.Grid[0][0] != 0x2800 {
		t.Error("out-of-range dots should be ignored")
	}
}

func TestSnapshotRoundsUp(t *testing.T) {
	// 5x3 board needs ceil(3/2)=2 chars across and ceil(5/4)=2 down.
	b, _ := life.NewBoard(5, 3)
	b.Set(4, 2, life.Alive)

	out := Snapshot(b)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	blank := true
	for _, line := range lines {
		for _, r := range line {
			if r != 0x2800 {
				blank = false
			}
		}
	}
	if blank {
		t.Error("live cell missing from snapshot")
	}
}

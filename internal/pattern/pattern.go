package pattern

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/san-kum/lifelab/internal/life"
)

// Cell is a board coordinate relative to a pattern's top-left corner.
type Cell struct {
	Row, Col int
}

// Pattern is a named set of live cells.
type Pattern struct {
	Name  string
	Desc  string
	Cells []Cell
}

// Size returns the bounding-box dimensions of the pattern.
func (p Pattern) Size() (rows, cols int) {
	for _, c := range p.Cells {
		if c.Row+1 > rows {
			rows = c.Row + 1
		}
		if c.Col+1 > cols {
			cols = c.Col + 1
		}
	}
	return rows, cols
}

// Stamp writes the pattern onto the board with its top-left corner at
// (atRow, atCol). The whole pattern must fit on the board.
func (p Pattern) Stamp(b *life.Board, atRow, atCol int) error {
	rows, cols := p.Size()
	if atRow < 0 || atCol < 0 || atRow+rows > b.Rows() || atCol+cols > b.Cols() {
		return fmt.Errorf("pattern %q (%dx%d) does not fit at (%d,%d) on %dx%d board",
			p.Name, rows, cols, atRow, atCol, b.Rows(), b.Cols())
	}
	for _, c := range p.Cells {
		b.Set(atRow+c.Row, atCol+c.Col, life.Alive)
	}
	return nil
}

// StampCentered places the pattern in the middle of the board.
func (p Pattern) StampCentered(b *life.Board) error {
	rows, cols := p.Size()
	return p.Stamp(b, (b.Rows()-rows)/2, (b.Cols()-cols)/2)
}

var builtins = map[string]Pattern{
	"block": {
		Name:  "block",
		Desc:  "2x2 still life",
		Cells: []Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	"blinker": {
		Name:  "blinker",
		Desc:  "period-2 oscillator",
		Cells: []Cell{{0, 0}, {0, 1}, {0, 2}},
	},
	"toad": {
		Name:  "toad",
		Desc:  "period-2 oscillator",
		Cells: []Cell{{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}},
	},
	"beacon": {
		Name:  "beacon",
		Desc:  "period-2 oscillator",
		Cells: []Cell{{0, 0}, {0, 1}, {1, 0}, {2, 3}, {3, 2}, {3, 3}},
	},
	"glider": {
		Name:  "glider",
		Desc:  "diagonal spaceship",
		Cells: []Cell{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	},
	"r-pentomino": {
		Name:  "r-pentomino",
		Desc:  "long-lived methuselah",
		Cells: []Cell{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}},
	},
}

// Get returns a builtin pattern by name.
func Get(name string) (Pattern, bool) {
	p, ok := builtins[name]
	return p, ok
}

// Names lists the builtin pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Randomize fills the board with a random soup at the given live-cell
// density. Density is clamped to [0, 1].
func Randomize(b *life.Board, density float64, rng *rand.Rand) {
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			s := life.Dead
			if rng.Float64() < density {
				s = life.Alive
			}
			b.Set(row, col, s)
		}
	}
}

package tui

import "github.com/san-kum/lifelab/internal/life"

const (
	aliveRune = '█'
	deadRune  = '·'
)

func cellRune(s life.State) rune {
	if s == life.Alive {
		return aliveRune
	}
	return deadRune
}

// canvas mirrors the board as a rune grid. It subscribes to the engine and
// repaints only the cells that changed on each tick instead of rescanning
// the whole board per frame.
type canvas struct {
	cells [][]rune
}

func newCanvas(b *life.Board) *canvas {
	cells := make([][]rune, b.Rows())
	for row := range cells {
		cells[row] = make([]rune, b.Cols())
		for col := range cells[row] {
			cells[row][col] = cellRune(b.Get(row, col))
		}
	}
	return &canvas{cells: cells}
}

func (c *canvas) OnCell(ch life.Change) { c.cells[ch.Row][ch.Col] = cellRune(ch.State) }
func (c *canvas) OnTick(_, _, _ int)    {}
func (c *canvas) OnHalt(_ int)          {}

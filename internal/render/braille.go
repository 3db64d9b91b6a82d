// Package render draws board snapshots as braille text, packing a 2x4 block
// of cells into each output character so large boards fit a terminal.
package render

import (
	"strings"

	"github.com/san-kum/lifelab/internal/life"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas accumulates dots on a braille character grid.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

// NewCanvas allocates a canvas covering width*2 by height*4 dots.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		Width:  width,
		Height: height,
		Grid:   make([][]rune, height),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, width)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set marks the dot at (x, y) in dot coordinates. Out-of-range dots are
// ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for i, row := range c.Grid {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// Snapshot renders the board's live cells, one dot per cell.
func Snapshot(b *life.Board) string {
	c := NewCanvas((b.Cols()+1)/2, (b.Rows()+3)/4)
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			if b.Get(row, col) == life.Alive {
				c.Set(col, row)
			}
		}
	}
	return c.String()
}

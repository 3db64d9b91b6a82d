package life

import "fmt"

// State is the condition of a single cell.
type State uint8

const (
	Dead State = iota
	Alive
)

// Board is a fixed-size grid of cell states stored row-major. The live-cell
// count is maintained incrementally on every write, never by rescanning.
type Board struct {
	rows  int
	cols  int
	cells []State
	alive int
}

// NewBoard returns an all-dead board. Dimensions are fixed for the board's
// lifetime; non-positive dimensions are rejected.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("board dimensions must be positive, got %dx%d", rows, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]State, rows*cols),
	}, nil
}

func (b *Board) Rows() int  { return b.rows }
func (b *Board) Cols() int  { return b.cols }
func (b *Board) Alive() int { return b.alive }

// index panics on out-of-range coordinates. Callers are expected to stay in
// bounds; silently clamping or wrapping here would mask bugs in the caller.
func (b *Board) index(row, col int) int {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		panic(fmt.Sprintf("life: cell (%d,%d) out of range on %dx%d board", row, col, b.rows, b.cols))
	}
	return row*b.cols + col
}

// Get returns the state at a valid coordinate.
func (b *Board) Get(row, col int) State {
	return b.cells[b.index(row, col)]
}

// Set writes a state and adjusts the live count. Writing the current state
// back is a no-op on the count.
func (b *Board) Set(row, col int, s State) {
	i := b.index(row, col)
	prev := b.cells[i]
	b.cells[i] = s
	if prev == Dead && s == Alive {
		b.alive++
	} else if prev == Alive && s == Dead {
		b.alive--
	}
}

// Toggle flips the state at a coordinate and returns the new state.
func (b *Board) Toggle(row, col int) State {
	next := Alive
	if b.Get(row, col) == Alive {
		next = Dead
	}
	b.Set(row, col, next)
	return next
}

var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors counts the live cells among the up-to-8 adjacent coordinates.
// Offsets falling outside the grid are skipped; the boundary does not wrap.
func (b *Board) Neighbors(row, col int) int {
	count := 0
	for _, off := range neighborOffsets {
		r, c := row+off[0], col+off[1]
		if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
			continue
		}
		if b.cells[r*b.cols+c] == Alive {
			count++
		}
	}
	return count
}

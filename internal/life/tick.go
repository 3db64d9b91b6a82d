package life

// Change is a cell transition decided during a tick's scan phase and applied
// only after the whole scan completes.
type Change struct {
	Row, Col int
	State    State
}

// Observer receives simulation events. OnCell fires once per applied change
// so a renderer can redraw only the affected cells.
type Observer interface {
	OnCell(Change)
	OnTick(index, changed, alive int)
	OnHalt(totalTicks int)
}

// Engine advances a board one tick at a time. The transition rule is defined
// simultaneously across the grid, so each tick runs in two phases: scan the
// unmodified board recording every cell that must flip, then commit the
// recorded changes.
type Engine struct {
	observers []Observer
	pending   []Change
}

func NewEngine() *Engine {
	return &Engine{pending: make([]Change, 0, 64)}
}

func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// Tick applies one synchronous generation and returns the number of cells
// that changed. Zero means the board has reached a fixed point.
func (e *Engine) Tick(b *Board) int {
	e.pending = e.pending[:0]

	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			cur := b.cells[row*b.cols+col]
			if next := NextState(cur, b.Neighbors(row, col)); next != cur {
				e.pending = append(e.pending, Change{Row: row, Col: col, State: next})
			}
		}
	}

	// Each coordinate appears at most once per scan, so apply order is
	// irrelevant.
	for _, ch := range e.pending {
		b.Set(ch.Row, ch.Col, ch.State)
		for _, o := range e.observers {
			o.OnCell(ch)
		}
	}

	return len(e.pending)
}

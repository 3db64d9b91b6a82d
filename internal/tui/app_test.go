package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/lifelab/internal/config"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newSizedModel(t *testing.T) Model {
	t.Helper()
	m := New(config.DefaultConfig())
	nm, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 15})
	model := nm.(Model)
	if model.board == nil {
		t.Fatal("board not created from window size")
	}
	return model
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		nm, _ := m.Update(key(k))
		m = nm.(Model)
	}
	return m
}

func tickOnce(t *testing.T, m Model) Model {
	t.Helper()
	nm, _ := m.Update(tickMsg(time.Now()))
	return nm.(Model)
}

func TestBoardSizedFromTerminal(t *testing.T) {
	m := newSizedModel(t)
	if m.board.Rows() != 15-7 || m.board.Cols() != 30-4 {
		t.Errorf("expected 8x26 board, got %dx%d", m.board.Rows(), m.board.Cols())
	}
}

func TestCursorClampsAtEdges(t *testing.T) {
	m := newSizedModel(t)

	m = press(t, m, "up", "left")
	if m.curRow != 0 || m.curCol != 0 {
		t.Errorf("cursor moved out of the corner: (%d,%d)", m.curRow, m.curCol)
	}

	for i := 0; i < 100; i++ {
		m = press(t, m, "down", "right")
	}
	if m.curRow != m.board.Rows()-1 || m.curCol != m.board.Cols()-1 {
		t.Errorf("cursor not clamped to far corner: (%d,%d)", m.curRow, m.curCol)
	}
}

func TestPaintToggles(t *testing.T) {
	m := newSizedModel(t)

	m = press(t, m, " ")
	if m.board.Alive() != 1 {
		t.Fatalf("expected 1 alive after toggle, got %d", m.board.Alive())
	}
	m = press(t, m, " ")
	if m.board.Alive() != 0 {
		t.Fatalf("expected 0 alive after second toggle, got %d", m.board.Alive())
	}
}

func TestRateEntryRecoversFromBadInput(t *testing.T) {
	m := newSizedModel(t)
	m = press(t, m, "enter")
	if m.phase != phaseRate {
		t.Fatal("enter should confirm setup")
	}

	// Clear the prefilled rate and confirm an empty buffer.
	m = press(t, m, "backspace", "enter")
	if m.phase != phaseRate {
		t.Fatal("malformed rate should re-prompt, not advance")
	}
	if m.rateErr == "" {
		t.Error("expected a parse error message")
	}

	// Zero is rejected as well.
	m = press(t, m, "0", "enter")
	if m.phase != phaseRate || m.rateErr == "" {
		t.Error("zero rate should re-prompt")
	}

	m = press(t, m, "8", "enter")
	if m.phase != phaseSim {
		t.Fatal("valid rate should start the simulation")
	}
	if m.rate != 8 {
		t.Errorf("expected rate 8, got %d", m.rate)
	}
}

func TestRateEntryIgnoresNonDigits(t *testing.T) {
	m := newSizedModel(t)
	m = press(t, m, "enter", "backspace", "x", "3", "y", "2")
	if m.rateBuf != "32" {
		t.Errorf("expected buffer 32, got %q", m.rateBuf)
	}
}

func TestSimulationHaltsAtFixedPoint(t *testing.T) {
	m := newSizedModel(t)

	// A single cell dies on the first tick; the second tick changes nothing.
	m = press(t, m, " ", "enter", "enter")
	if m.phase != phaseSim {
		t.Fatal("expected simulation to start")
	}

	m = tickOnce(t, m)
	if m.phase != phaseSim {
		t.Fatal("board still changing, should keep running")
	}
	m = tickOnce(t, m)
	if m.phase != phaseHalted {
		t.Fatal("fixed point should halt the simulation")
	}
	if m.totalTicks != 2 {
		t.Errorf("expected 2 total ticks, got %d", m.totalTicks)
	}
}

func TestPauseSkipsTicks(t *testing.T) {
	m := newSizedModel(t)
	m = press(t, m, " ", "enter", "enter")

	m = press(t, m, "p")
	if !m.paused {
		t.Fatal("p should pause")
	}
	m = tickOnce(t, m)
	if m.tick != 0 {
		t.Errorf("paused tick advanced the clock to %d", m.tick)
	}
	m = press(t, m, "p")
	m = tickOnce(t, m)
	if m.tick != 1 {
		t.Errorf("expected 1 tick after resume, got %d", m.tick)
	}
}

func TestCanvasFollowsChanges(t *testing.T) {
	m := newSizedModel(t)
	m = press(t, m, " ", "enter", "enter")

	if m.grid.cells[0][0] != aliveRune {
		t.Error("canvas should start with the painted cell alive")
	}
	m = tickOnce(t, m)
	if m.grid.cells[0][0] != deadRune {
		t.Error("canvas should reflect the lone cell dying")
	}
}

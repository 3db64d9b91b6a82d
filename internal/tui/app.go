package tui

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/lifelab/internal/config"
	"github.com/san-kum/lifelab/internal/life"
	"github.com/san-kum/lifelab/internal/pattern"
)

type phase int

const (
	phaseSetup phase = iota
	phaseRate
	phaseSim
	phaseHalted
)

type tickMsg time.Time

func tickCmd(ticksPerSecond int) tea.Cmd {
	period := time.Duration(1_000_000/ticksPerSecond) * time.Microsecond
	return tea.Tick(period, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the interactive session: paint a starting configuration with the
// cursor, choose a tick rate, then watch the board evolve until it reaches a
// fixed point.
type Model struct {
	cfg *config.Config

	phase  phase
	board  *life.Board
	engine *life.Engine
	grid   *canvas

	curRow, curCol int

	rateBuf string
	rateErr string
	rate    int

	paused     bool
	tick       int
	totalTicks int
	history    []float64

	width, height int
}

func New(cfg *config.Config) Model {
	return Model{
		cfg:     cfg,
		rate:    cfg.TicksPerSecond,
		history: make([]float64, 0, 120),
		width:   80,
		height:  24,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.board == nil {
			m.createBoard()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		return m.handleTick()
	}
	return m, nil
}

// createBoard sizes the board from the terminal, leaving room for the header
// and status lines. Dimensions are fixed from here on; later resizes only
// affect the surrounding chrome.
func (m *Model) createBoard() {
	rows := m.height - 7
	cols := m.width - 4
	if rows < 5 {
		rows = 5
	}
	if cols < 5 {
		cols = 5
	}

	board, err := life.NewBoard(rows, cols)
	if err != nil {
		// Unreachable after clamping, but keep the board nil guard honest.
		return
	}
	m.board = board

	if m.cfg.Pattern != "" {
		if p, perr := pattern.Load(m.cfg.Pattern); perr == nil {
			// Preloaded seed is a convenience; skip it if it doesn't fit.
			_ = p.StampCentered(m.board)
		}
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.board == nil {
		return m, nil
	}

	switch m.phase {
	case phaseSetup:
		return m.setupKey(msg)
	case phaseRate:
		return m.rateKey(msg)
	case phaseSim:
		return m.simKey(msg)
	case phaseHalted:
		if msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) setupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.curRow > 0 {
			m.curRow--
		}
	case "down", "j":
		if m.curRow < m.board.Rows()-1 {
			m.curRow++
		}
	case "left", "h":
		if m.curCol > 0 {
			m.curCol--
		}
	case "right", "l":
		if m.curCol < m.board.Cols()-1 {
			m.curCol++
		}
	case " ":
		m.board.Toggle(m.curRow, m.curCol)
	case "enter":
		m.phase = phaseRate
		m.rateBuf = strconv.Itoa(m.rate)
		m.rateErr = ""
	}
	return m, nil
}

func (m Model) rateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "backspace":
		if len(m.rateBuf) > 0 {
			m.rateBuf = m.rateBuf[:len(m.rateBuf)-1]
		}
	case "enter":
		rate, err := strconv.Atoi(m.rateBuf)
		if err != nil || rate <= 0 {
			// Malformed rate is recoverable: report and re-prompt.
			m.rateErr = "rate must be a positive integer"
			m.rateBuf = ""
			return m, nil
		}
		m.rate = rate
		return m.startSim()
	default:
		if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
			m.rateBuf += s
		}
	}
	return m, nil
}

func (m Model) startSim() (tea.Model, tea.Cmd) {
	m.engine = life.NewEngine()
	m.grid = newCanvas(m.board)
	m.engine.AddObserver(m.grid)
	m.tick = 0
	m.totalTicks = 0
	m.paused = false
	m.history = m.history[:0]
	m.phase = phaseSim
	return m, tea.Batch(tea.ClearScreen, tickCmd(m.rate))
}

func (m Model) simKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != phaseSim {
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.rate)
	}

	changed := m.engine.Tick(m.board)
	m.tick++
	m.history = append(m.history, float64(m.board.Alive()))
	if len(m.history) > 120 {
		m.history = m.history[1:]
	}

	if changed == 0 {
		m.totalTicks = m.tick
		m.phase = phaseHalted
		return m, nil
	}
	return m, tickCmd(m.rate)
}

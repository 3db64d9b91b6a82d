package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	if m.board == nil {
		return "\n  " + dim.Render("waiting for terminal size...") + "\n"
	}

	switch m.phase {
	case phaseSetup:
		return m.viewSetup()
	case phaseRate:
		return m.viewRate()
	case phaseSim:
		return m.viewSim()
	case phaseHalted:
		return m.viewHalted()
	}
	return ""
}

func (m Model) header() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(dimmer.Render("  ╺━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("      " + cyan.Render("l i f e l a b") + "\n")
	b.WriteString(dimmer.Render("  ╺━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	return b.String()
}

func (m Model) viewSetup() string {
	var b strings.Builder
	b.WriteString(m.header())

	for row := 0; row < m.board.Rows(); row++ {
		b.WriteString("  ")
		if row != m.curRow {
			b.WriteString(m.boardRow(row))
		} else {
			// Splice the styled cursor into its row.
			var sb strings.Builder
			for col := 0; col < m.board.Cols(); col++ {
				sb.WriteRune(cellRune(m.board.Get(row, col)))
			}
			line := []rune(sb.String())
			left, right := string(line[:m.curCol]), string(line[m.curCol+1:])
			b.WriteString(left + magenta.Render("▮") + right)
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\n  %s %s\n",
		dim.Render("alive"), white.Render(fmt.Sprintf("%d", m.board.Alive()))))
	b.WriteString(dim.Render("  arrows move  space toggle  enter continue  q quit") + "\n")
	return b.String()
}

func (m Model) boardRow(row int) string {
	var sb strings.Builder
	for col := 0; col < m.board.Cols(); col++ {
		sb.WriteRune(cellRune(m.board.Get(row, col)))
	}
	return sb.String()
}

func (m Model) viewRate() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString("  " + white.Render("ticks per second: ") + magenta.Render(m.rateBuf+"▋") + "\n")
	if m.rateErr != "" {
		b.WriteString("  " + red.Render(m.rateErr) + "\n")
	}
	b.WriteString("\n" + dim.Render("  digits edit  enter start  esc quit") + "\n")
	return b.String()
}

func (m Model) viewSim() string {
	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("running")
	if m.paused {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	b.WriteString(fmt.Sprintf("\n  %s %s  %s %s  %s %s\n",
		statusIcon, statusText,
		dim.Render("tick"), white.Render(fmt.Sprintf("%d", m.tick)),
		dim.Render("alive"), white.Render(fmt.Sprintf("%d", m.board.Alive()))))

	for _, row := range m.grid.cells {
		b.WriteString("  " + string(row) + "\n")
	}

	if len(m.history) > 1 {
		b.WriteString(fmt.Sprintf("\n  %s %s\n",
			dim.Render("population"), cyan.Render(sparkline(m.history, 32))))
	}
	b.WriteString(dim.Render("  space pause  q quit") + "\n")
	return b.String()
}

func (m Model) viewHalted() string {
	var b strings.Builder
	b.WriteString("\n  " + green.Render("■") + " " +
		white.Render(fmt.Sprintf("terminated after %d ticks", m.totalTicks)) + "\n")

	for _, row := range m.grid.cells {
		b.WriteString("  " + string(row) + "\n")
	}

	b.WriteString(fmt.Sprintf("\n  %s %s\n",
		dim.Render("alive"), white.Render(fmt.Sprintf("%d", m.board.Alive()))))
	b.WriteString(dim.Render("  press q to quit") + "\n")
	return b.String()
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		v := data[i*step]
		idx := int((v - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

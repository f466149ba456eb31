package attention

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/screens/testkit"
	"github.com/abhisek/mindscan/internal/stimgen"
	"github.com/abhisek/mindscan/internal/ui/components"
	"github.com/abhisek/mindscan/internal/ui/theme"
)

const (
	// cellWidth fits a double-width symbol with one space either side.
	cellWidth = 4
	cellGap   = 1
	rowPitch  = 2
)

func (s *AttentionScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	st := components.NewStack(width)
	st.Gap(1)
	st.Add(theme.Title.Render(s.heading()))
	st.Gap(1)

	s.detectAt = components.Region{}
	s.gridAt = components.Region{}

	switch s.session.Phase() {
	case assessment.PhaseForward, assessment.PhaseBackward:
		st.Add(components.Panel(s.renderSpan(), cw))
	case assessment.PhaseCPT:
		st.Add(components.Panel(s.renderCPT(), cw))
		st.Gap(1)
		btn := components.NewButton("Target Detected", "Space")
		btn.Disabled = !s.session.CanDetect()
		s.detectAt = st.Add(btn.View())
	case assessment.PhaseVisual:
		st.Add(theme.Body.Render(fmt.Sprintf("Find all the %s symbols in the grid", s.session.Target())))
		st.Gap(1)
		s.gridAt = st.Add(s.renderGrid())
	default:
		st.Add(theme.Correct.Render("All phases complete"))
	}

	st.Gap(1)
	board := components.ScoreBoard("Current Scores", testkit.Rows(s.session.Lines(), s.session.Phase()), components.InnerWidth(cw))
	st.Add(components.Panel(board, cw))
	return st.String()
}

func (s *AttentionScreen) heading() string {
	switch s.session.Phase() {
	case assessment.PhaseForward:
		return "Forward Digit Span"
	case assessment.PhaseBackward:
		return "Backward Digit Span"
	case assessment.PhaseCPT:
		return "Continuous Performance Test"
	case assessment.PhaseVisual:
		return "Visual Search"
	}
	return "Attention Test"
}

func (s *AttentionScreen) renderSpan() string {
	phase := s.session.Phase()
	progress := theme.Hint.Render(fmt.Sprintf("Sequence %d of %d", s.session.Item()+1, s.session.SpanCount(phase)))

	if s.session.Revealing() {
		seq, _ := s.session.CurrentSpan()
		return "Remember this sequence:\n\n" + theme.Stimulus.Render(spaced(seq)) + "\n\n" + progress
	}

	prompt := "Enter the sequence"
	if phase == assessment.PhaseBackward {
		prompt += " backwards"
	}
	return prompt + "\n\n" + s.input.View() + "\n\n" + progress
}

func (s *AttentionScreen) renderCPT() string {
	idx, n := s.session.CPTProgress()
	symbol := " "
	if sym, ok := s.session.CPTSymbol(); ok {
		symbol = sym
	}
	return fmt.Sprintf("Press the button when you see a %s", s.session.Target()) +
		"\n\n" + theme.Stimulus.Render(symbol) + "\n\n" +
		theme.Hint.Render(fmt.Sprintf("Symbol %d of %d", idx+1, n))
}

func (s *AttentionScreen) renderGrid() string {
	return renderGrid(s.session.Grid(), s.session.Selected, s.cursor)
}

// renderGrid draws the board with fixed-width cells so clicks can be mapped
// back by arithmetic. Rows are separated by a blank line.
func renderGrid(g stimgen.Grid, selected func(int) bool, cursor int) string {
	var b strings.Builder
	for row := 0; row < g.Size; row++ {
		if row > 0 {
			b.WriteString(strings.Repeat("\n", rowPitch))
		}
		for col := 0; col < g.Size; col++ {
			if col > 0 {
				b.WriteString(strings.Repeat(" ", cellGap))
			}
			idx := row*g.Size + col
			text := " " + runewidth.FillRight(g.Cells[idx], cellWidth-2) + " "
			style := lipgloss.NewStyle()
			if selected(idx) {
				style = theme.CellSelected
			}
			if idx == cursor {
				style = style.Inherit(theme.CellCursor)
			}
			b.WriteString(style.Render(text))
		}
	}
	return b.String()
}

// cellAt maps a click inside the grid region to a cell index. Clicks on the
// gaps between cells miss.
func cellAt(r components.Region, size, x, y int) (int, bool) {
	if size == 0 || !r.Contains(x, y) {
		return 0, false
	}
	dx, dy := x-r.X, y-r.Y
	if dx%(cellWidth+cellGap) >= cellWidth || dy%rowPitch != 0 {
		return 0, false
	}
	col, row := dx/(cellWidth+cellGap), dy/rowPitch
	if col >= size || row >= size {
		return 0, false
	}
	return row*size + col, true
}

func spaced(seq string) string {
	return strings.Join(strings.Split(seq, ""), " ")
}

package problemsolving

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/screens/testkit"
	"github.com/abhisek/mindscan/internal/ui/canvas"
	"github.com/abhisek/mindscan/internal/ui/components"
	"github.com/abhisek/mindscan/internal/ui/theme"
)

const (
	maxBoardCols = 56
	minBoardRows = 8
	maxBoardRows = 22
	trailGlyph   = "·"
)

func (s *ProblemSolvingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	st := components.NewStack(width)
	st.Gap(1)

	switch s.session.Phase() {
	case assessment.PhaseTrail:
		st.Add(theme.Title.Render("Trail Making Test"))
		st.Add(theme.Hint.Render(fmt.Sprintf("Connect the numbers in order from 1 to %d", len(s.session.Circles()))))
		st.Gap(1)
		s.boardAt = st.Add(s.renderBoard(cw, height))
		st.Add(theme.Body.Render(fmt.Sprintf("Current number: %d", s.session.Expected())))
		st.Add(s.input.View())
		if s.miss != "" {
			st.Add(theme.Incorrect.Render(s.miss))
		}
	case assessment.PhasePattern:
		s.board = nil
		values, _ := s.session.CurrentPattern()
		st.Add(theme.Title.Render("Pattern Recognition"))
		st.Gap(1)
		st.Add(components.Panel(s.renderQuestion("What number comes next in this pattern?", values), cw))
		st.Add(theme.Hint.Render(fmt.Sprintf("Pattern %d of %d", s.session.Item()+1, s.session.ItemCount(assessment.PhasePattern))))
	default:
		s.board = nil
		st.Add(theme.Title.Render("Number Sequence"))
		st.Gap(1)
		if values, ok := s.session.CurrentSequence(); ok {
			st.Add(components.Panel(s.renderQuestion("What number comes next in this sequence?", values), cw))
			st.Add(theme.Hint.Render(fmt.Sprintf("Sequence %d of %d", s.session.Item()+1, s.session.ItemCount(assessment.PhaseSequence))))
		} else {
			st.Add(components.Panel(theme.Correct.Render("All sequences answered")+"\n"+
				theme.Hint.Render("Press Esc to leave the test"), cw))
		}
	}

	st.Gap(1)
	board := components.ScoreBoard("Current Scores", testkit.Rows(s.session.Lines(), s.session.Phase()), components.InnerWidth(cw))
	st.Add(components.Panel(board, cw))
	return st.String()
}

func (s *ProblemSolvingScreen) renderQuestion(prompt string, values []int) string {
	nums := make([]string, len(values))
	for i, v := range values {
		nums[i] = strconv.Itoa(v)
	}
	seq := strings.Join(nums, ", ") + ", ?"
	return prompt + "\n\n" + theme.Stimulus.Render(seq) + "\n\n" + s.input.View()
}

// renderBoard rasterizes the circles and the path drawn so far inside a
// bordered box. The raster keeps roughly the surface aspect ratio with
// terminal cells about twice as tall as they are wide.
func (s *ProblemSolvingScreen) renderBoard(cw, height int) string {
	cfg := s.session.Config()
	cols := min(cw, maxBoardCols)
	rows := int(float64(cols) * cfg.Height / cfg.Width / 2)
	rows = max(min(rows, maxBoardRows, height-18), minBoardRows)

	c := canvas.New(cols, rows, cfg.Width, cfg.Height)
	path := s.session.Path()
	for i := 1; i < len(path); i++ {
		c.Line(path[i-1], path[i], trailGlyph, &theme.TrailLine)
	}
	expected := s.session.Expected()
	for _, circle := range s.session.Circles() {
		style := &theme.CirclePending
		switch {
		case circle.Number < expected:
			style = &theme.CircleVisited
		case circle.Number == expected:
			style = &theme.Selected
		}
		c.Label(circle.Center, circleLabel(circle.Number), style)
	}
	s.board = c

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(c.Render())
}

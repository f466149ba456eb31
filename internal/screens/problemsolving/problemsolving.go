package problemsolving

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/screen"
	"github.com/abhisek/mindscan/internal/screens/testkit"
	"github.com/abhisek/mindscan/internal/ui/canvas"
	"github.com/abhisek/mindscan/internal/ui/components"
	"github.com/abhisek/mindscan/internal/ui/layout"
)

// ProblemSolvingScreen runs the trail making, pattern and sequence phases.
type ProblemSolvingScreen struct {
	session *assessment.ProblemSolving
	tracker *testkit.Tracker
	input   components.TextInput
	phase   string
	miss    string

	// Trail surface from the last render.
	board   *canvas.Canvas
	boardAt components.Region
}

var _ screen.Screen = (*ProblemSolvingScreen)(nil)
var _ screen.KeyHintProvider = (*ProblemSolvingScreen)(nil)
var _ screen.Closer = (*ProblemSolvingScreen)(nil)

// New creates a ProblemSolvingScreen with a fresh session.
func New(deps testkit.Deps) *ProblemSolvingScreen {
	tracker := testkit.NewTracker(deps.Board)
	s := &ProblemSolvingScreen{
		session: assessment.NewProblemSolving(deps.Stimuli.ProblemSolving, deps.Settings.ProblemSolving, deps.Options(tracker.OnComplete)),
		tracker: tracker,
	}
	s.resetInput()
	return s
}

func (s *ProblemSolvingScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ProblemSolvingScreen) Title() string {
	return assessment.TestProblemSolving.Title()
}

// Close records the partial result when the user leaves early.
func (s *ProblemSolvingScreen) Close() {
	s.tracker.Close(s.session)
}

func (s *ProblemSolvingScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.session.Phase() == assessment.PhaseTrail:
		return []layout.KeyHint{
			{Key: "Click", Description: "Connect circle"},
			{Key: "0-9 Enter", Description: "Connect by number"},
			{Key: "Esc", Description: "Leave test"},
		}
	case s.session.Exhausted():
		return []layout.KeyHint{{Key: "Esc", Description: "Leave test"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Leave test"},
	}
}

func (s *ProblemSolvingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ClickMsg:
		s.handleClick(msg)
		return s, s.after()

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			s.submit()
			return s, s.after()
		}
	}

	if !s.accepting() {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// after refreshes the input for a new phase and hands off to the summary
// once the test has completed.
func (s *ProblemSolvingScreen) after() tea.Cmd {
	if s.session.Phase() != s.phase {
		s.resetInput()
	}
	return s.tracker.Finish(s.session)
}

func (s *ProblemSolvingScreen) accepting() bool {
	switch s.session.Phase() {
	case assessment.PhaseTrail, assessment.PhasePattern:
		return true
	case assessment.PhaseSequence:
		return !s.session.Exhausted()
	}
	return false
}

func (s *ProblemSolvingScreen) resetInput() {
	s.phase = s.session.Phase()
	if s.phase == assessment.PhaseTrail {
		s.input = components.NewTextInput("Circle number", components.Digits, 3)
		return
	}
	s.input = components.NewTextInput("Enter your answer", components.SignedDigits, 12)
}

func (s *ProblemSolvingScreen) submit() {
	if !s.accepting() {
		return
	}
	value := s.input.Value()
	s.input.Reset()

	if s.session.Phase() != assessment.PhaseTrail {
		s.session.Submit(value)
		return
	}
	n, ok := assessment.ParseAnswer(value)
	if !ok {
		return
	}
	s.connect(n)
}

func (s *ProblemSolvingScreen) connect(n int) {
	want := s.session.Expected()
	if s.session.ClickCircle(n) {
		s.miss = ""
		return
	}
	s.miss = fmt.Sprintf("Circle %d is not next; look for %d", n, want)
}

// handleClick maps a click on the trail surface to a circle. A click on a
// label selects that circle even when the cell centre falls outside the hit
// radius.
func (s *ProblemSolvingScreen) handleClick(msg screen.ClickMsg) {
	if s.session.Phase() != assessment.PhaseTrail || s.board == nil {
		return
	}
	col, row, ok := s.cellAt(msg.X, msg.Y)
	if !ok {
		return
	}
	if n, ok := s.labelAt(col, row); ok {
		s.connect(n)
		return
	}
	if s.session.ClickAt(s.board.ToSurface(col, row)) {
		s.miss = ""
	}
}

// cellAt converts content coordinates to a canvas cell inside the border.
func (s *ProblemSolvingScreen) cellAt(x, y int) (col, row int, ok bool) {
	if !s.boardAt.Contains(x, y) {
		return 0, 0, false
	}
	cols, rows := s.board.Size()
	col = x - s.boardAt.X - 1
	row = y - s.boardAt.Y - 1
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return 0, 0, false
	}
	return col, row, true
}

// labelAt finds the circle whose label covers the cell. Overlapping labels
// resolve to the expected circle, then to the one drawn last.
func (s *ProblemSolvingScreen) labelAt(col, row int) (int, bool) {
	found := 0
	for _, c := range s.session.Circles() {
		start, r, w := s.board.LabelSpan(c.Center, circleLabel(c.Number))
		if r != row || col < start || col >= start+w {
			continue
		}
		if c.Number == s.session.Expected() {
			return c.Number, true
		}
		found = c.Number
	}
	return found, found != 0
}

func circleLabel(n int) string {
	return fmt.Sprintf("(%d)", n)
}

package attention

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/screen"
	"github.com/abhisek/mindscan/internal/screens/testkit"
	"github.com/abhisek/mindscan/internal/timer"
	"github.com/abhisek/mindscan/internal/ui/components"
	"github.com/abhisek/mindscan/internal/ui/layout"
)

// AttentionScreen runs the digit span, CPT and visual search phases.
type AttentionScreen struct {
	session *assessment.Attention
	tracker *testkit.Tracker
	scope   *timer.Scope
	synced  int
	input   components.TextInput
	cursor  int

	// Hit regions from the last render.
	detectAt components.Region
	gridAt   components.Region
}

var _ screen.Screen = (*AttentionScreen)(nil)
var _ screen.KeyHintProvider = (*AttentionScreen)(nil)
var _ screen.Closer = (*AttentionScreen)(nil)

// New creates an AttentionScreen with a fresh session.
func New(deps testkit.Deps) *AttentionScreen {
	tracker := testkit.NewTracker(deps.Board)
	sess := assessment.NewAttention(deps.Stimuli.Attention, deps.Settings.Attention, deps.Options(tracker.OnComplete))
	input := components.NewTextInput("Enter the sequence", components.DigitsAndDash, 20)
	input.Blur()
	return &AttentionScreen{
		session: sess,
		tracker: tracker,
		scope:   timer.NewScope(context.Background(), "attention/"+sess.ID()),
		synced:  -1,
		input:   input,
	}
}

func (s *AttentionScreen) Init() tea.Cmd {
	return s.sync()
}

func (s *AttentionScreen) Title() string {
	return assessment.TestAttention.Title()
}

// Close cancels pending timers and records the partial result.
func (s *AttentionScreen) Close() {
	s.scope.Close()
	s.tracker.Close(s.session)
}

func (s *AttentionScreen) KeyHints() []layout.KeyHint {
	switch s.session.Phase() {
	case assessment.PhaseForward, assessment.PhaseBackward:
		if s.session.Revealing() {
			return []layout.KeyHint{{Key: "Esc", Description: "Leave test"}}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Leave test"},
		}
	case assessment.PhaseCPT:
		return []layout.KeyHint{
			{Key: "Space", Description: "Target detected"},
			{Key: "Esc", Description: "Leave test"},
		}
	case assessment.PhaseVisual:
		return []layout.KeyHint{
			{Key: "←↑↓→", Description: "Move"},
			{Key: "Space", Description: "Select"},
			{Key: "Click", Description: "Select"},
		}
	}
	return nil
}

func (s *AttentionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.ExpiredMsg:
		return s.handleExpired(msg)

	case screen.ClickMsg:
		s.handleClick(msg)
		return s, s.after(nil)

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.answering() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// after re-arms the deadline when the session moved on and hands off to the
// summary once the test has completed.
func (s *AttentionScreen) after(cmd tea.Cmd) tea.Cmd {
	return tea.Batch(cmd, s.sync(), s.tracker.Finish(s.session, s.notes()...))
}

// sync keeps exactly one deadline armed for the session's current epoch.
func (s *AttentionScreen) sync() tea.Cmd {
	if s.session.Epoch() == s.synced {
		return nil
	}
	s.synced = s.session.Epoch()
	s.scope.Cancel()
	if d, ok := s.session.Deadline(); ok {
		return s.scope.Arm(d.Epoch, d.After)
	}
	return nil
}

func (s *AttentionScreen) answering() bool {
	p := s.session.Phase()
	return (p == assessment.PhaseForward || p == assessment.PhaseBackward) && !s.session.Revealing()
}

func (s *AttentionScreen) handleExpired(msg timer.ExpiredMsg) (screen.Screen, tea.Cmd) {
	if !s.scope.Live(msg) {
		return s, nil
	}
	s.session.Expire(msg.Epoch)

	var cmd tea.Cmd
	if s.answering() {
		s.input.Reset()
		cmd = s.input.Focus()
	}
	return s, s.after(cmd)
}

func (s *AttentionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.session.Phase() {
	case assessment.PhaseForward, assessment.PhaseBackward:
		if !s.answering() {
			return s, nil
		}
		if key == "enter" {
			s.session.SubmitSpan(s.input.Value())
			s.input.Reset()
			if !s.answering() {
				s.input.Blur()
			}
			return s, s.after(nil)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case assessment.PhaseCPT:
		switch key {
		case "space", " ", "enter", "d":
			s.session.Detect()
		}
		return s, s.after(nil)

	case assessment.PhaseVisual:
		s.handleGridKey(key)
		return s, s.after(nil)
	}
	return s, nil
}

func (s *AttentionScreen) handleGridKey(key string) {
	size := s.session.Grid().Size
	if size == 0 {
		return
	}
	row, col := s.cursor/size, s.cursor%size
	switch key {
	case "up", "k":
		row = max(row-1, 0)
	case "down", "j":
		row = min(row+1, size-1)
	case "left", "h":
		col = max(col-1, 0)
	case "right", "l":
		col = min(col+1, size-1)
	case "space", " ", "enter":
		s.session.ToggleCell(s.cursor)
		return
	}
	s.cursor = row*size + col
}

func (s *AttentionScreen) handleClick(msg screen.ClickMsg) {
	switch s.session.Phase() {
	case assessment.PhaseCPT:
		if s.detectAt.Contains(msg.X, msg.Y) {
			s.session.Detect()
		}
	case assessment.PhaseVisual:
		if idx, ok := cellAt(s.gridAt, s.session.Grid().Size, msg.X, msg.Y); ok {
			s.cursor = idx
			s.session.ToggleCell(idx)
		}
	}
}

// notes are the CPT signal-detection counts shown on the summary.
func (s *AttentionScreen) notes() []string {
	m := s.session.CPTMetrics()
	return []string{
		fmt.Sprintf("CPT: %d of %d targets detected, %d missed, %d false alarms",
			m.Hits, m.Targets, m.Omissions, m.Commissions),
	}
}

// Package testkit holds what the three test screens share: their
// dependencies, session options and the hand-off to the summary screen.
package testkit

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/config"
	"github.com/abhisek/mindscan/internal/router"
	"github.com/abhisek/mindscan/internal/screens/summary"
	"github.com/abhisek/mindscan/internal/stimgen"
	"github.com/abhisek/mindscan/internal/stimuli"
	"github.com/abhisek/mindscan/internal/ui/components"
)

// Deps are the collaborators injected into every test screen.
type Deps struct {
	Stimuli  *stimuli.Set
	Settings config.Settings
	Board    *assessment.MemoryLog
	Sink     assessment.EventSink
	Pictures stimuli.PictureSource
}

// Generator returns a fresh stimulus generator, seeded when configured.
func (d Deps) Generator() *stimgen.Generator {
	if d.Settings.Seed != nil {
		return stimgen.NewSeeded(*d.Settings.Seed)
	}
	return stimgen.New()
}

// Options builds session options that call onComplete when the test ends.
func (d Deps) Options(onComplete func()) assessment.Options {
	return assessment.Options{
		Sink:       d.Sink,
		OnComplete: onComplete,
		Generator:  d.Generator(),
	}
}

// Session is the part of a test session the screens report on.
type Session interface {
	Result() assessment.Result
	Finished() bool
	Abandon()
}

// Tracker records a session's result on the board exactly once, either when
// the test completes or when its screen is closed early.
type Tracker struct {
	board    *assessment.MemoryLog
	done     bool
	reported bool
}

// NewTracker creates a tracker for one screen. board may be nil.
func NewTracker(board *assessment.MemoryLog) *Tracker {
	return &Tracker{board: board}
}

// OnComplete is passed to the session as its completion callback.
func (t *Tracker) OnComplete() { t.done = true }

// Done reports whether the completion callback has fired.
func (t *Tracker) Done() bool { return t.done }

// Finish records the completed result and returns the command that swaps
// the test screen for its summary. It returns nil until the session has
// completed, and after the first call.
func (t *Tracker) Finish(s Session, extra ...string) tea.Cmd {
	if !t.done || t.reported {
		return nil
	}
	t.reported = true
	r := s.Result()
	t.add(r)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(r, extra...)}
	}
}

// Close records a partial result when the screen leaves before completion.
func (t *Tracker) Close(s Session) {
	if t.reported {
		return
	}
	t.reported = true
	if !s.Finished() {
		s.Abandon()
	}
	t.add(s.Result())
}

func (t *Tracker) add(r assessment.Result) {
	if t.board != nil {
		t.board.AddResult(r)
	}
}

// Rows converts score lines for the score board, highlighting the active
// phase.
func Rows(lines []assessment.ScoreLine, active string) []components.ScoreRow {
	rows := make([]components.ScoreRow, len(lines))
	for i, l := range lines {
		rows[i] = components.ScoreRow{
			Label:    l.Label,
			Value:    l.Display(),
			Fraction: l.Fraction(),
			Active:   l.Phase == active,
		}
	}
	return rows
}

package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/config"
	"github.com/abhisek/mindscan/internal/router"
)

type fakeSession struct {
	finished  bool
	abandoned bool
}

func (f *fakeSession) Result() assessment.Result {
	return assessment.Result{SessionID: "s1", Test: assessment.TestLanguage, Completed: f.finished}
}
func (f *fakeSession) Finished() bool { return f.finished }
func (f *fakeSession) Abandon()       { f.abandoned = true }

func TestTrackerFinishOnce(t *testing.T) {
	board := assessment.NewMemoryLog()
	tr := NewTracker(board)
	s := &fakeSession{}

	assert.Nil(t, tr.Finish(s), "no hand-off before completion")

	tr.OnComplete()
	s.finished = true
	cmd := tr.Finish(s, "note")
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Language Test Results", msg.Screen.Title())

	assert.Nil(t, tr.Finish(s), "second call is a no-op")
	tr.Close(s)
	assert.False(t, s.abandoned)
	assert.Len(t, board.Results(), 1)
}

func TestTrackerCloseRecordsPartial(t *testing.T) {
	board := assessment.NewMemoryLog()
	tr := NewTracker(board)
	s := &fakeSession{}

	tr.Close(s)
	tr.Close(s)
	assert.True(t, s.abandoned)
	require.Len(t, board.Results(), 1)
	assert.False(t, board.Results()[0].Completed)
}

func TestDepsGeneratorSeeded(t *testing.T) {
	seed := int64(9)
	d := Deps{Settings: config.Defaults()}
	d.Settings.Seed = &seed

	a := d.Generator().Symbols([]string{"a", "b", "c"}, 20)
	b := d.Generator().Symbols([]string{"a", "b", "c"}, 20)
	assert.Equal(t, a, b)
}

func TestRowsHighlightActivePhase(t *testing.T) {
	rows := Rows([]assessment.ScoreLine{
		{Phase: "a", Label: "A", Value: 1, Max: 2},
		{Phase: "b", Label: "B", Value: 40, Unit: assessment.UnitPercent},
	}, "b")
	require.Len(t, rows, 2)
	assert.False(t, rows[0].Active)
	assert.True(t, rows[1].Active)
	assert.Equal(t, "1/2", rows[0].Value)
	assert.InDelta(t, 0.4, rows[1].Fraction, 1e-9)
}

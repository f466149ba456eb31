package assessment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindscan/internal/stimuli"
)

func TestNotifierFiresOnce(t *testing.T) {
	calls := 0
	n := NewNotifier(func() { calls++ })

	assert.True(t, n.Fire())
	assert.False(t, n.Fire())
	assert.True(t, n.Fired())
	assert.Equal(t, 1, calls)

	var nilNotifier *Notifier
	assert.False(t, nilNotifier.Fire())
	assert.False(t, nilNotifier.Fired())
	assert.True(t, NewNotifier(nil).Fire())
}

func TestSessionEventsRecorded(t *testing.T) {
	log := NewMemoryLog()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	l := NewLanguage(stimuli.MustDefault().Language, DefaultLanguageConfig(), Options{
		ID:   "abc",
		Sink: WithLogging(log),
		Now:  func() time.Time { return at },
	})
	l.Submit("clock")
	l.Abandon()

	events := log.Events()
	require.Len(t, events, 4)
	assert.Equal(t, EventStart, events[0].Kind)
	assert.Equal(t, EventPhase, events[1].Kind)
	assert.Equal(t, PhaseNaming, events[1].Phase)
	assert.Equal(t, EventResponse, events[2].Kind)
	assert.True(t, events[2].Correct)
	assert.Equal(t, EventAbandon, events[3].Kind)
	for _, e := range events {
		assert.Equal(t, "abc", e.SessionID)
		assert.Equal(t, at, e.At)
	}
}

func TestMemoryLogReplacesResult(t *testing.T) {
	log := NewMemoryLog()
	log.AddResult(Result{SessionID: "a"})
	log.AddResult(Result{SessionID: "b"})
	log.AddResult(Result{SessionID: "a", Completed: true})

	results := log.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].SessionID)
	assert.True(t, results[0].Completed)
}

func TestScoreLineDisplay(t *testing.T) {
	tests := []struct {
		line ScoreLine
		want string
		frac float64
	}{
		{ScoreLine{Value: 3, Max: 4, Unit: UnitCount}, "3/4", 0.75},
		{ScoreLine{Value: 73, Unit: UnitPercent}, "73%", 0.73},
		{ScoreLine{Value: 1, Unit: UnitWords}, "1 word", -1},
		{ScoreLine{Value: 5, Unit: UnitWords}, "5 words", -1},
		{ScoreLine{Value: 0, Max: 0, Unit: UnitCount}, "0/0", 0},
	}
	for _, tt := range tests {
		if got := tt.line.Display(); got != tt.want {
			t.Errorf("Display() = %q, want %q", got, tt.want)
		}
		assert.InDelta(t, tt.frac, tt.line.Fraction(), 1e-9)
	}
}

func TestParseTestKind(t *testing.T) {
	for _, in := range []string{"attention", " Language ", "problem-solving", "problem"} {
		_, err := ParseTestKind(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseTestKind("memory")
	assert.Error(t, err)
}

func TestComputeCPTMetrics(t *testing.T) {
	presented := []string{"T", "x", "T", "x", "T"}
	responses := []CPTResponse{
		{Index: 0, Symbol: "T", Correct: true},
		{Index: 1, Symbol: "x"},
	}
	m := ComputeCPTMetrics(presented, "T", responses)

	assert.Equal(t, CPTMetrics{Presented: 5, Targets: 3, Hits: 1, Omissions: 2, Commissions: 1, CorrectReject: 1}, m)
	assert.InDelta(t, 1.0/3, m.HitRate(), 1e-9)
}

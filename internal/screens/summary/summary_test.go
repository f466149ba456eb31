package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/nav"
)

func testResult() assessment.Result {
	return assessment.Result{
		SessionID:   "s1",
		Test:        assessment.TestAttention,
		Completed:   true,
		CompletedAt: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
		Lines: []assessment.ScoreLine{
			{Phase: "forward", Label: "Digit Span (Forward)", Value: 3, Max: 4, Unit: assessment.UnitCount},
			{Phase: "cpt", Label: "CPT Accuracy", Value: 23, Max: 100, Unit: assessment.UnitPercent},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult())
	if s.Title() != "Attention Test Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Attention Test Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testResult(), "Omissions: 2")
	view := s.View(80, 24)
	for _, want := range []string{"Test complete!", "Digit Span (Forward)", "3/4", "23%", "Omissions: 2", "10:30:00"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary view missing %q", want)
		}
	}
}

func TestSummaryScreen_Abandoned(t *testing.T) {
	r := testResult()
	r.Completed = false
	r.CompletedAt = time.Time{}
	view := New(r).View(80, 24)
	if !strings.Contains(view, "Test ended") {
		t.Error("expected abandoned heading")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(nav.NavigateMsg)
	if !ok || msg.Path != nav.PathAssessment {
		t.Errorf("Enter navigates to %+v, want %q", msg, nav.PathAssessment)
	}
}

func TestSummaryScreen_Navigation_Profile(t *testing.T) {
	s := New(testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	if cmd == nil {
		t.Fatal("expected a command on P")
	}
	if msg := cmd().(nav.NavigateMsg); msg.Path != nav.PathProfile {
		t.Errorf("P navigates to %q, want %q", msg.Path, nav.PathProfile)
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testResult())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}

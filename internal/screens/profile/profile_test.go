package profile

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindscan/internal/assessment"
)

func loaded(s *ProfileScreen) *ProfileScreen {
	s.Update(s.Init()())
	return s
}

func TestProfileScreen_Empty(t *testing.T) {
	s := loaded(New(nil))
	if !strings.Contains(s.View(80, 30), "No tests taken yet") {
		t.Error("expected empty state")
	}
}

func TestProfileScreen_LoadingState(t *testing.T) {
	s := New(assessment.NewMemoryLog())
	if !strings.Contains(s.View(80, 30), "Loading results...") {
		t.Error("expected loading state before Init completes")
	}
}

func TestProfileScreen_ListsNewestFirst(t *testing.T) {
	board := assessment.NewMemoryLog()
	board.AddResult(assessment.Result{SessionID: "one", Test: assessment.TestAttention, Completed: true,
		CompletedAt: time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC)})
	board.AddResult(assessment.Result{SessionID: "two", Test: assessment.TestLanguage})
	board.Record(assessment.Event{SessionID: "one"})
	board.Record(assessment.Event{SessionID: "one"})

	s := loaded(New(board))
	view := s.View(100, 30)
	if !strings.Contains(view, "1 completed · 1 ended early") {
		t.Error("expected totals")
	}
	lang := strings.Index(view, "Language Test")
	att := strings.Index(view, "Attention Test")
	if lang < 0 || att < 0 || lang > att {
		t.Error("expected newest result first")
	}
	if !strings.Contains(view, "09:30:00") {
		t.Error("expected completion time")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(100, 30), "2 events recorded") {
		t.Error("expected expanded details for the selected result")
	}
}

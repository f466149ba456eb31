// Package profile is the /profile route: the results recorded during this
// run of the app.
package profile

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/screen"
	"github.com/abhisek/mindscan/internal/screens/testkit"
	"github.com/abhisek/mindscan/internal/ui/components"
	"github.com/abhisek/mindscan/internal/ui/layout"
	"github.com/abhisek/mindscan/internal/ui/theme"
)

type resultsLoadedMsg struct {
	Results []assessment.Result
	Events  map[string]int // sessionID → recorded events
}

// ProfileScreen lists finished and abandoned sessions, newest first.
type ProfileScreen struct {
	board    *assessment.MemoryLog
	results  []assessment.Result
	events   map[string]int
	selected int
	expanded map[int]bool
	loaded   bool
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a ProfileScreen over board. board may be nil.
func New(board *assessment.MemoryLog) *ProfileScreen {
	return &ProfileScreen{
		board:    board,
		expanded: make(map[int]bool),
	}
}

func (s *ProfileScreen) Init() tea.Cmd {
	board := s.board
	return func() tea.Msg {
		if board == nil {
			return resultsLoadedMsg{}
		}
		results := board.Results()
		for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
			results[i], results[j] = results[j], results[i]
		}
		events := make(map[string]int)
		for _, e := range board.Events() {
			events[e.SessionID]++
		}
		return resultsLoadedMsg{Results: results, Events: events}
	}
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsLoadedMsg:
		s.results = msg.Results
		s.events = msg.Events
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		case "enter", "space":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading results...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Title.Render("Your results")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(fmt.Sprintf("%d completed · %d ended early", s.count(true), s.count(false)))))
	b.WriteString("\n\n")

	if len(s.results) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("No tests taken yet. Start one from the Assessment tab!")))
		return b.String()
	}

	cw := components.ContentWidth(width)
	for i, r := range s.results {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		status := "completed"
		if !r.Completed {
			status = "ended early"
		}
		line := fmt.Sprintf("%s%-22s %-12s %s", prefix, r.Test.Title(), status, finishedAt(r))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			board := components.ScoreBoard("", testkit.Rows(r.Lines, ""), components.InnerWidth(cw))
			detail := board + "\n" + theme.Hint.Render(fmt.Sprintf("%d events recorded", s.events[r.SessionID]))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Panel(detail, cw)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *ProfileScreen) count(completed bool) int {
	n := 0
	for _, r := range s.results {
		if r.Completed == completed {
			n++
		}
	}
	return n
}

func finishedAt(r assessment.Result) string {
	if r.CompletedAt.IsZero() {
		return ""
	}
	return r.CompletedAt.Format("15:04:05")
}

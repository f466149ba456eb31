package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/nav"
	"github.com/abhisek/mindscan/internal/screen"
	"github.com/abhisek/mindscan/internal/ui/components"
	"github.com/abhisek/mindscan/internal/ui/layout"
	"github.com/abhisek/mindscan/internal/ui/theme"
)

// SummaryScreen displays the final scores of one test.
type SummaryScreen struct {
	result assessment.Result
	notes  []string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. notes are extra lines shown under the
// scores, such as CPT error counts.
func New(result assessment.Result, notes ...string) *SummaryScreen {
	return &SummaryScreen{result: result, notes: notes}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.result.Test.Title() + " Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "More tests"},
		{Key: "P", Description: "Profile"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s, navigate(nav.PathAssessment)
		case "p", "P":
			return s, navigate(nav.PathProfile)
		}
	}
	return s, nil
}

func navigate(path string) tea.Cmd {
	return func() tea.Msg { return nav.NavigateMsg{Path: path} }
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	heading := "Test complete!"
	if !s.result.Completed {
		heading = "Test ended"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(heading))
	b.WriteString("\n\n")

	if !s.result.CompletedAt.IsZero() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Finished at %s", s.result.CompletedAt.Format("15:04:05"))))
		b.WriteString("\n\n")
	}

	cw := components.ContentWidth(width)
	board := components.ScoreBoard("", rows(s.result.Lines), components.InnerWidth(cw))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Panel(board, cw)))
	b.WriteString("\n")

	if len(s.notes) > 0 {
		b.WriteString("\n")
		for _, n := range s.notes {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(n)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func rows(lines []assessment.ScoreLine) []components.ScoreRow {
	out := make([]components.ScoreRow, len(lines))
	for i, l := range lines {
		out[i] = components.ScoreRow{Label: l.Label, Value: l.Display(), Fraction: l.Fraction()}
	}
	return out
}

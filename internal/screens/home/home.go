// Package home is the / route: banner, run statistics and the main menu.
package home

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/nav"
	"github.com/abhisek/mindscan/internal/screen"
	"github.com/abhisek/mindscan/internal/ui/components"
	"github.com/abhisek/mindscan/internal/ui/layout"
)

// stats are derived from the results board on every render.
type stats struct {
	completed int
	early     int
	last      string
	mascot    MascotVariant
}

// HomeScreen is the landing screen of the application.
type HomeScreen struct {
	board  *assessment.MemoryLog
	menu   components.Menu
	labels []string

	// Button block from the last render and its rows per item.
	menuAt  components.Region
	rowSize int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. board may be nil.
func New(board *assessment.MemoryLog) *HomeScreen {
	navigate := func(path string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return nav.NavigateMsg{Path: path} }
		}
	}

	labels := []string{"START ASSESSMENT", "VIEW PROFILE", "ABOUT THE TESTS", "EXIT"}
	items := []components.MenuItem{
		{Label: labels[0], Action: navigate(nav.PathAssessment)},
		{Label: labels[1], Action: navigate(nav.PathProfile)},
		{Label: labels[2], Action: navigate(nav.PathAbout)},
		{Label: labels[3], Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		board:  board,
		menu:   components.NewMenu(items),
		labels: labels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "F1-F4", Description: "Tabs"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if click, ok := msg.(screen.ClickMsg); ok {
		if !h.menuAt.Contains(click.X, click.Y) || h.rowSize == 0 {
			return h, nil
		}
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Click((click.Y - h.menuAt.Y) / h.rowSize)
		return h, cmd
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactWidth(width) || layout.IsCompactHeight(height)
	cw := components.ContentWidth(width)
	st := h.stats()

	s := components.NewStack(width)
	s.Gap(1)
	s.Add(renderBanner(width))
	s.Gap(1)
	if !compact {
		s.Add(RenderMascot(st.mascot))
		s.Gap(1)
	}
	s.Add(renderStatsBar(st, cw, compact))
	s.Gap(1)

	if compact {
		h.rowSize = 1
		h.menuAt = s.Add(renderButtonsCompact(h.labels, h.menu.Selected))
	} else {
		h.rowSize = 3
		h.menuAt = s.Add(renderButtons(h.labels, h.menu.Selected))
	}
	return s.String()
}

func (h *HomeScreen) stats() stats {
	var st stats
	if h.board == nil {
		return st
	}
	results := h.board.Results()
	for _, r := range results {
		if r.Completed {
			st.completed++
		} else {
			st.early++
		}
	}
	if n := len(results); n > 0 {
		last := results[n-1]
		st.last = last.Test.Title()
		st.mascot = MascotAlert
		if last.Completed {
			st.mascot = MascotCelebrating
		}
	}
	return st
}

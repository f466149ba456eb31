// Package picker is the /assessment route: a menu of the three tests.
package picker

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/router"
	"github.com/abhisek/mindscan/internal/screen"
	"github.com/abhisek/mindscan/internal/screens/launch"
	"github.com/abhisek/mindscan/internal/screens/testkit"
	"github.com/abhisek/mindscan/internal/ui/components"
	"github.com/abhisek/mindscan/internal/ui/layout"
	"github.com/abhisek/mindscan/internal/ui/theme"
)

var descriptions = map[assessment.TestKind]string{
	assessment.TestAttention:      "digit span, continuous performance, visual search",
	assessment.TestLanguage:       "object naming, sentence completion, verbal fluency",
	assessment.TestProblemSolving: "trail making, patterns, number sequences",
}

// PickerScreen lists the tests and starts the chosen one.
type PickerScreen struct {
	deps   testkit.Deps
	menu   components.Menu
	menuAt components.Region
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates the picker.
func New(deps testkit.Deps) *PickerScreen {
	p := &PickerScreen{deps: deps}
	var items []components.MenuItem
	for _, kind := range assessment.AllTests() {
		items = append(items, components.MenuItem{
			Label:       kind.Title(),
			Description: descriptions[kind],
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: launch.Screen(kind, p.deps)}
				}
			},
		})
	}
	p.menu = components.NewMenu(items)
	return p
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Title() string {
	return "Assessment"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Start test"},
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if click, ok := msg.(screen.ClickMsg); ok {
		if !p.menuAt.Contains(click.X, click.Y) {
			return p, nil
		}
		var cmd tea.Cmd
		p.menu, cmd = p.menu.Click(click.Y - p.menuAt.Y)
		return p, cmd
	}

	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PickerScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	st := components.NewStack(width)
	st.Gap(1)
	st.Add(theme.Title.Render("Choose a test"))
	st.Add(theme.Hint.Render("Each test runs its phases in order and reports a score per phase."))
	st.Gap(1)
	p.menuAt = st.Add(strings.TrimRight(p.menu.View(), "\n"))
	st.Gap(1)
	st.Add(components.Panel(p.renderLatest(cw), cw))
	return st.String()
}

// renderLatest shows the most recent result of each test in this run.
func (p *PickerScreen) renderLatest(cw int) string {
	latest := map[assessment.TestKind]assessment.Result{}
	if p.deps.Board != nil {
		for _, r := range p.deps.Board.Results() {
			latest[r.Test] = r
		}
	}

	var b strings.Builder
	b.WriteString(components.PanelTitle("Latest results"))
	for _, kind := range assessment.AllTests() {
		b.WriteString("\n")
		r, ok := latest[kind]
		value := theme.Hint.Render("not taken")
		if ok {
			value = theme.Body.Render(brief(r))
		}
		label := lipgloss.NewStyle().Width(22).Render(kind.Title())
		b.WriteString(label + value)
	}
	return b.String()
}

func brief(r assessment.Result) string {
	parts := make([]string, len(r.Lines))
	for i, l := range r.Lines {
		parts[i] = l.Display()
	}
	s := strings.Join(parts, " · ")
	if !r.Completed {
		s = fmt.Sprintf("%s (ended early)", s)
	}
	return s
}

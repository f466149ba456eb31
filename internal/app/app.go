// Package app wires the router, the navigation bar and the Bubble Tea
// program together.
package app

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/nav"
	"github.com/abhisek/mindscan/internal/router"
	"github.com/abhisek/mindscan/internal/screen"
	"github.com/abhisek/mindscan/internal/screens/about"
	"github.com/abhisek/mindscan/internal/screens/home"
	"github.com/abhisek/mindscan/internal/screens/launch"
	"github.com/abhisek/mindscan/internal/screens/picker"
	"github.com/abhisek/mindscan/internal/screens/profile"
	"github.com/abhisek/mindscan/internal/screens/testkit"
	"github.com/abhisek/mindscan/internal/ui/layout"
)

// Options configure a program run.
type Options struct {
	Deps testkit.Deps

	// Test opens a test directly on the assessment route when set.
	Test assessment.TestKind

	// LogFile receives the standard logger while the TUI runs. Empty
	// discards log output.
	LogFile string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps    testkit.Deps
	router  *router.Router
	route   string
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates the model on the home route, or on the assessment
// route with test already running.
func newAppModel(deps testkit.Deps, test assessment.TestKind) AppModel {
	m := AppModel{deps: deps, route: nav.PathHome}
	if test == "" {
		root := m.rootFor(nav.PathHome)
		m.router = router.New(root)
		m.initCmd = root.Init()
		return m
	}

	m.route = nav.PathAssessment
	root := m.rootFor(nav.PathAssessment)
	m.router = router.New(root)
	m.initCmd = tea.Batch(root.Init(), m.router.Push(launch.Screen(test, deps)))
	return m
}

// rootFor builds the bottom screen of a route.
func (m AppModel) rootFor(path string) screen.Screen {
	switch path {
	case nav.PathAssessment:
		return picker.New(m.deps)
	case nav.PathProfile:
		return profile.New(m.deps.Board)
	case nav.PathAbout:
		return about.New()
	}
	return home.New(m.deps.Board)
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case nav.NavigateMsg:
		return m.navigate(msg.Path)

	case tea.MouseClickMsg:
		return m.handleClick(msg.Mouse())

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
		if r, ok := nav.ForKey(msg.String()); ok {
			return m.navigate(r.Path)
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// navigate switches routes. The current stack is closed, so a running test
// records a partial result.
func (m AppModel) navigate(path string) (tea.Model, tea.Cmd) {
	if _, ok := nav.Lookup(path); !ok {
		log.Printf("app: unknown route %q", path)
		return m, nil
	}
	m.route = path
	return m, m.router.Reset(m.rootFor(path))
}

// handleClick routes a left click to the nav bar or, translated into
// content coordinates, to the active screen.
func (m AppModel) handleClick(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if mouse.Button != tea.MouseLeft {
		return m, nil
	}
	switch {
	case mouse.Y == layout.HeaderHeight:
		if r, ok := nav.HitTest(m.route, mouse.X); ok {
			return m.navigate(r.Path)
		}
		return m, nil
	case mouse.Y > layout.HeaderHeight:
		click := screen.ClickMsg{X: mouse.X, Y: mouse.Y - layout.HeaderHeight - layout.NavHeight}
		return m, m.router.Update(click)
	}
	return m, nil
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// render composes header, nav bar, active screen and footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := ""
	if r, ok := nav.Lookup(m.route); ok {
		status = r.Icon + " " + r.Label + "  "
	}
	header := layout.RenderHeader(title, status, m.width) + "\n" + nav.Bar(m.route, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	content := m.router.View(m.width, layout.ContentHeight(m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	if m.router.Depth() > 1 && !hasKey(hints, "Esc") {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func hasKey(hints []layout.KeyHint, key string) bool {
	for _, h := range hints {
		if h.Key == key {
			return true
		}
	}
	return false
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.LogFile != "" {
		f, err := tea.LogToFile(opts.LogFile, "mindscan")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(newAppModel(opts.Deps, opts.Test))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

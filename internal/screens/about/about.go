// Package about is the /about route: what each test measures.
package about

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/screen"
	"github.com/abhisek/mindscan/internal/ui/components"
	"github.com/abhisek/mindscan/internal/ui/layout"
	"github.com/abhisek/mindscan/internal/ui/theme"
)

type section struct {
	test   assessment.TestKind
	phases []string
}

var sections = []section{
	{assessment.TestAttention, []string{
		"Digit Span: repeat digit sequences, first as shown, then reversed.",
		"Continuous Performance: press Space whenever the target symbol appears.",
		"Visual Search: select every target cell in the grid.",
	}},
	{assessment.TestLanguage, []string{
		"Object Naming: name the object in each picture.",
		"Sentence Completion: finish each sentence with a fitting word.",
		"Verbal Fluency: list words that start with a given letter.",
	}},
	{assessment.TestProblemSolving, []string{
		"Trail Making: connect the numbered circles in order.",
		"Pattern Recognition: find the number that continues a pattern.",
		"Number Sequences: find the next number in a sequence.",
	}},
}

// AboutScreen describes the tests. It has no state.
type AboutScreen struct{}

var _ screen.Screen = (*AboutScreen)(nil)
var _ screen.KeyHintProvider = (*AboutScreen)(nil)

// New creates an AboutScreen.
func New() *AboutScreen {
	return &AboutScreen{}
}

func (a *AboutScreen) Init() tea.Cmd {
	return nil
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *AboutScreen) Title() string {
	return "About"
}

func (a *AboutScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "F2", Description: "Take a test"}}
}

func (a *AboutScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	st := components.NewStack(width)
	st.Gap(1)
	st.Add(theme.Title.Render("About mindscan"))
	st.Add(theme.Hint.Render("Three short tests. Scores are kept only until you quit."))

	left := lipgloss.NewStyle().Width(components.InnerWidth(cw)).Align(lipgloss.Left)
	for _, s := range sections {
		var b strings.Builder
		b.WriteString(components.PanelTitle(s.test.Title()))
		for _, p := range s.phases {
			b.WriteString("\n• " + p)
		}
		st.Gap(1)
		st.Add(components.Panel(left.Render(b.String()), cw))
	}
	return st.String()
}

package picker

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/config"
	"github.com/abhisek/mindscan/internal/router"
	"github.com/abhisek/mindscan/internal/screen"
	"github.com/abhisek/mindscan/internal/screens/testkit"
	"github.com/abhisek/mindscan/internal/stimuli"
)

func testPicker() (*PickerScreen, *assessment.MemoryLog) {
	board := assessment.NewMemoryLog()
	return New(testkit.Deps{Stimuli: stimuli.MustDefault(), Settings: config.Defaults(), Board: board}), board
}

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	return msg.Screen
}

func TestPickerScreen_View(t *testing.T) {
	p, _ := testPicker()
	view := p.View(80, 30)
	for _, want := range []string{"Choose a test", "Attention Test", "Language Test", "Problem-Solving Test", "not taken"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPickerScreen_EnterStartsSelected(t *testing.T) {
	p, _ := testPicker()
	p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := pushed(t, cmd).Title(); got != "Language Test" {
		t.Errorf("pushed %q, want %q", got, "Language Test")
	}
}

func TestPickerScreen_ClickStartsTest(t *testing.T) {
	p, _ := testPicker()
	p.View(80, 30)
	_, cmd := p.Update(screen.ClickMsg{X: p.menuAt.X + 2, Y: p.menuAt.Y + 2})
	if got := pushed(t, cmd).Title(); got != "Problem-Solving Test" {
		t.Errorf("pushed %q, want %q", got, "Problem-Solving Test")
	}

	_, cmd = p.Update(screen.ClickMsg{X: 0, Y: 0})
	if cmd != nil {
		t.Error("click outside the menu should do nothing")
	}
}

func TestPickerScreen_LatestResult(t *testing.T) {
	p, board := testPicker()
	board.AddResult(assessment.Result{
		SessionID: "a",
		Test:      assessment.TestLanguage,
		Lines: []assessment.ScoreLine{
			{Label: "Object Naming", Value: 4, Max: 5},
			{Label: "Verbal Fluency", Value: 3, Unit: assessment.UnitWords},
		},
	})
	if !strings.Contains(p.View(80, 30), "4/5 · 3 words (ended early)") {
		t.Error("expected the language result summary")
	}
}

package language

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/config"
	"github.com/abhisek/mindscan/internal/router"
	"github.com/abhisek/mindscan/internal/screens/testkit"
	"github.com/abhisek/mindscan/internal/stimuli"
)

type missingPictures struct{}

func (missingPictures) Picture(ref string) (string, error) {
	return "", errors.New("offline")
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func testScreen(pictures stimuli.PictureSource) (*LanguageScreen, *assessment.MemoryLog) {
	seed := int64(1)
	settings := config.Defaults()
	settings.Seed = &seed
	board := assessment.NewMemoryLog()
	s := New(testkit.Deps{
		Stimuli:  stimuli.MustDefault(),
		Settings: settings,
		Board:    board,
		Pictures: pictures,
	})
	return s, board
}

// deliver runs cmd and feeds picture messages back to the screen.
func deliver(s *LanguageScreen, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case pictureMsg:
		s.Update(msg)
	case tea.BatchMsg:
		for _, c := range msg {
			deliver(s, c)
		}
	}
}

func answer(s *LanguageScreen, text string) tea.Cmd {
	for _, r := range text {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(enter())
	return cmd
}

func TestLanguageScreen_Title(t *testing.T) {
	s, _ := testScreen(nil)
	if s.Title() != "Language Test" {
		t.Errorf("Title = %q, want %q", s.Title(), "Language Test")
	}
}

func TestLanguageScreen_NamingShowsPicture(t *testing.T) {
	s, _ := testScreen(nil)
	cmd := s.loadPicture()
	if cmd == nil {
		t.Fatal("expected the first picture to be requested")
	}
	if s.loadPicture() != nil {
		t.Error("the same picture should not be requested twice")
	}
	if !strings.Contains(s.View(80, 40), "Loading...") {
		t.Error("expected loading state before the picture arrives")
	}
	deliver(s, cmd)

	view := s.View(80, 40)
	if !strings.Contains(view, "Name the object shown in the image:") {
		t.Error("expected naming prompt")
	}
	if !strings.Contains(view, "Object 1 of 5") {
		t.Error("expected item progress")
	}
	if strings.Contains(view, "Image not available") || strings.Contains(view, "Loading...") {
		t.Error("embedded picture should load")
	}
}

func TestLanguageScreen_MissingPicture(t *testing.T) {
	s, _ := testScreen(missingPictures{})
	deliver(s, s.loadPicture())

	if !strings.Contains(s.View(80, 40), "Image not available") {
		t.Error("expected fallback text for a missing picture")
	}
}

func TestLanguageScreen_StalePictureIgnored(t *testing.T) {
	s, _ := testScreen(nil)
	s.loadPicture()
	s.Update(pictureMsg{Ref: "lamp", Art: "LAMP"})
	if !s.loading {
		t.Error("a picture for another item must not end the loading state")
	}
}

func TestLanguageScreen_NamingAdvances(t *testing.T) {
	s, _ := testScreen(nil)
	deliver(s, s.loadPicture())
	deliver(s, answer(s, "Clock"))

	if s.session.Scores().Get(assessment.PhaseNaming) != 1 {
		t.Errorf("naming score = %d, want 1", s.session.Scores().Get(assessment.PhaseNaming))
	}
	if s.input.Value() != "" {
		t.Error("input should be cleared after submit")
	}
	if s.pictureRef != "book" {
		t.Errorf("pictureRef = %q, want %q", s.pictureRef, "book")
	}
	if !strings.Contains(s.View(80, 40), "Object 2 of 5") {
		t.Error("expected second object")
	}
}

func TestLanguageScreen_FullRun(t *testing.T) {
	s, board := testScreen(nil)
	for _, w := range []string{"clock", "book", "mug", "chair", "lamp"} {
		answer(s, w)
	}
	if s.session.Phase() != assessment.PhaseCompletion {
		t.Fatalf("phase = %q, want %q", s.session.Phase(), assessment.PhaseCompletion)
	}
	view := s.View(80, 40)
	if !strings.Contains(view, "The sky is ___") || !strings.Contains(view, "Sentence 1 of 3") {
		t.Error("expected first sentence")
	}

	for _, w := range []string{"blue", "run", "hot"} {
		answer(s, w)
	}
	if !strings.Contains(s.View(80, 40), `Letter: "S"`) {
		t.Error("expected fluency instruction with the upper-cased letter")
	}

	cmd := answer(s, "sun, sand, sea, x, s")
	if !s.tracker.Done() {
		t.Fatal("expected completion after fluency submit")
	}

	var replaced bool
	for _, c := range flatten(cmd) {
		if _, ok := c().(router.ReplaceScreenMsg); ok {
			replaced = true
		}
	}
	if !replaced {
		t.Error("expected the summary screen to replace the test")
	}

	results := board.Results()
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	got := results[0].Scores
	if got.Get(assessment.PhaseNaming) != 4 || got.Get(assessment.PhaseCompletion) != 2 || got.Get(assessment.PhaseFluency) != 3 {
		t.Errorf("scores = %s, want naming=4 completion=2 fluency=3", got)
	}
}

func TestLanguageScreen_CloseRecordsPartialResult(t *testing.T) {
	s, board := testScreen(nil)
	answer(s, "clock")
	s.Close()

	results := board.Results()
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Completed {
		t.Error("closed session should not be completed")
	}
}

func TestLanguageScreen_KeyHints(t *testing.T) {
	s, _ := testScreen(nil)
	if hints := s.KeyHints(); hints[0].Description != "Submit" {
		t.Errorf("hint = %q, want %q", hints[0].Description, "Submit")
	}
}

// flatten expands batch commands without running their children.
func flatten(cmd tea.Cmd) []tea.Cmd {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Cmd{func() tea.Msg { return msg }}
	}
	var out []tea.Cmd
	for _, c := range batch {
		out = append(out, flatten(c)...)
	}
	return out
}

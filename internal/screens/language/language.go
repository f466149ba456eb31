package language

import (
	"log"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/screen"
	"github.com/abhisek/mindscan/internal/screens/testkit"
	"github.com/abhisek/mindscan/internal/stimuli"
	"github.com/abhisek/mindscan/internal/ui/components"
	"github.com/abhisek/mindscan/internal/ui/layout"
)

const fluencyWidth = 52

// LanguageScreen runs the naming, completion and fluency phases.
type LanguageScreen struct {
	session  *assessment.Language
	tracker  *testkit.Tracker
	pictures stimuli.PictureSource
	input    components.TextInput

	// picture state for the current naming item
	pictureRef string
	picture    string
	pictureErr error
	loading    bool
}

var _ screen.Screen = (*LanguageScreen)(nil)
var _ screen.KeyHintProvider = (*LanguageScreen)(nil)
var _ screen.Closer = (*LanguageScreen)(nil)

// New creates a LanguageScreen with a fresh session.
func New(deps testkit.Deps) *LanguageScreen {
	tracker := testkit.NewTracker(deps.Board)
	pictures := deps.Pictures
	if pictures == nil {
		pictures = stimuli.EmbeddedPictures{}
	}
	s := &LanguageScreen{
		session:  assessment.NewLanguage(deps.Stimuli.Language, deps.Settings.Language, deps.Options(tracker.OnComplete)),
		tracker:  tracker,
		pictures: pictures,
	}
	s.input = s.newInput()
	return s
}

func (s *LanguageScreen) Init() tea.Cmd {
	return tea.Batch(s.input.Init(), s.loadPicture())
}

func (s *LanguageScreen) Title() string {
	return assessment.TestLanguage.Title()
}

// Close records the partial result when the user leaves early.
func (s *LanguageScreen) Close() {
	s.tracker.Close(s.session)
}

func (s *LanguageScreen) KeyHints() []layout.KeyHint {
	label := "Submit"
	if s.session.Phase() == assessment.PhaseFluency {
		label = "Complete test"
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: label},
		{Key: "Esc", Description: "Leave test"},
	}
}

func (s *LanguageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pictureMsg:
		s.handlePicture(msg)
		return s, nil

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return s.submit()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *LanguageScreen) submit() (screen.Screen, tea.Cmd) {
	before := s.session.Phase()
	if _, ok := s.session.Submit(s.input.Value()); !ok {
		return s, nil
	}
	if s.session.Phase() != before {
		s.input = s.newInput()
	} else {
		s.input.Reset()
	}
	return s, tea.Batch(s.tracker.Finish(s.session), s.loadPicture())
}

func (s *LanguageScreen) newInput() components.TextInput {
	switch s.session.Phase() {
	case assessment.PhaseCompletion:
		return components.NewTextInput("Complete the sentence", nil, 30)
	case assessment.PhaseFluency:
		input := components.NewTextInput("Enter words separated by commas (e.g., sun, sand, sea)", nil, 0)
		input.Model.SetWidth(fluencyWidth)
		return input
	}
	return components.NewTextInput("Type your answer", nil, 30)
}

// loadPicture fetches the artwork for the current naming item. It returns
// nil when the item has not changed or the phase has no picture.
func (s *LanguageScreen) loadPicture() tea.Cmd {
	obj, ok := s.session.CurrentObject()
	if !ok || obj.Picture == s.pictureRef {
		return nil
	}
	s.pictureRef = obj.Picture
	s.picture = ""
	s.pictureErr = nil
	s.loading = true

	src := s.pictures
	ref := obj.Picture
	return func() tea.Msg {
		art, err := src.Picture(ref)
		return pictureMsg{Ref: ref, Art: art, Err: err}
	}
}

func (s *LanguageScreen) handlePicture(msg pictureMsg) {
	if msg.Ref != s.pictureRef {
		return
	}
	s.loading = false
	s.picture = msg.Art
	s.pictureErr = msg.Err
	if msg.Err != nil {
		log.Printf("language: picture %q: %v", msg.Ref, msg.Err)
	}
}

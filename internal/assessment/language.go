package assessment

import (
	"fmt"
	"strings"

	"github.com/abhisek/mindscan/internal/stimuli"
)

// Language test phases, in order.
const (
	PhaseNaming     = "naming"
	PhaseCompletion = "completion"
	PhaseFluency    = "fluency"
)

// Language is the naming, sentence completion and verbal fluency test.
type Language struct {
	base
	set    stimuli.Language
	letter string
	words  []string
}

// NewLanguage starts a language session in the naming phase.
func NewLanguage(set stimuli.Language, cfg LanguageConfig, opts Options) *Language {
	letter := set.FluencyLetter
	if cfg.FluencyLetter != "" {
		letter = cfg.FluencyLetter
	}
	l := &Language{
		base:   newBase(TestLanguage, opts, PhaseNaming, PhaseCompletion, PhaseFluency),
		set:    set,
		letter: Normalize(letter),
	}
	l.enterPhase(PhaseNaming)
	return l
}

// Normalize lower-cases and trims an answer.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Letter is the fluency starting letter.
func (l *Language) Letter() string { return l.letter }

// CurrentObject returns the naming item on screen.
func (l *Language) CurrentObject() (stimuli.Object, bool) {
	if l.phase != PhaseNaming || l.item >= len(l.set.Objects) {
		return stimuli.Object{}, false
	}
	return l.set.Objects[l.item], true
}

// CurrentSentence returns the completion prompt on screen.
func (l *Language) CurrentSentence() (stimuli.Sentence, bool) {
	if l.phase != PhaseCompletion || l.item >= len(l.set.Sentences) {
		return stimuli.Sentence{}, false
	}
	return l.set.Sentences[l.item], true
}

// ItemCount returns the number of items in a phase.
func (l *Language) ItemCount(phase string) int {
	switch phase {
	case PhaseNaming:
		return len(l.set.Objects)
	case PhaseCompletion:
		return len(l.set.Sentences)
	case PhaseFluency:
		return 1
	}
	return 0
}

// Submit scores the input for the current phase and advances. ok is false
// once the test has finished.
func (l *Language) Submit(input string) (correct, ok bool) {
	switch l.phase {
	case PhaseNaming:
		correct = Normalize(input) == Normalize(l.set.Objects[l.item].Word)
	case PhaseCompletion:
		correct = matchesAny(input, l.set.Sentences[l.item].Answers)
	case PhaseFluency:
		l.submitFluency(input)
		return true, true
	default:
		return false, false
	}

	if correct {
		l.scores = l.scores.Increment(l.phase)
	}
	l.record(EventResponse, correct, describeInput(input))

	if l.item < l.ItemCount(l.phase)-1 {
		l.nextItem()
		return correct, true
	}
	if l.phase == PhaseNaming {
		l.enterPhase(PhaseCompletion)
	} else {
		l.enterPhase(PhaseFluency)
	}
	return correct, true
}

// FluencyWords returns the accepted words of the fluency answer.
func (l *Language) FluencyWords() []string {
	return append([]string(nil), l.words...)
}

// FluencyCount counts comma-separated tokens that start with letter and are
// longer than one character. Repeated words are counted each time.
func FluencyCount(input, letter string) (int, []string) {
	letter = Normalize(letter)
	if letter == "" {
		return 0, nil
	}
	var words []string
	for _, tok := range strings.Split(input, ",") {
		w := Normalize(tok)
		if len([]rune(w)) > 1 && strings.HasPrefix(w, letter) {
			words = append(words, w)
		}
	}
	return len(words), words
}

// Result returns the score snapshot.
func (l *Language) Result() Result {
	return l.result(l.Lines())
}

// Lines returns the score panel rows.
func (l *Language) Lines() []ScoreLine {
	return []ScoreLine{
		{Phase: PhaseNaming, Label: "Object Naming", Value: l.scores.Get(PhaseNaming), Max: len(l.set.Objects), Unit: UnitCount},
		{Phase: PhaseCompletion, Label: "Sentence Completion", Value: l.scores.Get(PhaseCompletion), Max: len(l.set.Sentences), Unit: UnitCount},
		{Phase: PhaseFluency, Label: fmt.Sprintf("Verbal Fluency (%q)", strings.ToUpper(l.letter)), Value: l.scores.Get(PhaseFluency), Unit: UnitWords},
	}
}

func (l *Language) submitFluency(input string) {
	count, words := FluencyCount(input, l.letter)
	l.words = words
	l.scores = l.scores.With(PhaseFluency, count)
	l.record(EventResponse, count > 0, fmt.Sprintf("words=%d", count))
	l.enter(PhaseDone)
	l.finish(true)
}

// enterPhase skips phases without items.
func (l *Language) enterPhase(phase string) {
	l.enter(phase)
	if l.ItemCount(phase) > 0 {
		return
	}
	if phase == PhaseNaming {
		l.enterPhase(PhaseCompletion)
		return
	}
	l.enterPhase(PhaseFluency)
}

func matchesAny(input string, answers []string) bool {
	got := Normalize(input)
	for _, a := range answers {
		if got == Normalize(a) {
			return true
		}
	}
	return false
}

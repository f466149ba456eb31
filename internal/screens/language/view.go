package language

import (
	"fmt"
	"strings"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/screens/testkit"
	"github.com/abhisek/mindscan/internal/ui/components"
	"github.com/abhisek/mindscan/internal/ui/theme"
)

func (s *LanguageScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	st := components.NewStack(width)
	st.Gap(1)

	phase := s.session.Phase()
	switch phase {
	case assessment.PhaseNaming:
		st.Add(theme.Title.Render("Object Naming"))
		st.Gap(1)
		st.Add(components.Panel(s.renderNaming(), cw))
		st.Add(theme.Hint.Render(fmt.Sprintf("Object %d of %d", s.session.Item()+1, s.session.ItemCount(phase))))
	case assessment.PhaseCompletion:
		st.Add(theme.Title.Render("Sentence Completion"))
		st.Gap(1)
		st.Add(components.Panel(s.renderCompletion(), cw))
		st.Add(theme.Hint.Render(fmt.Sprintf("Sentence %d of %d", s.session.Item()+1, s.session.ItemCount(phase))))
	case assessment.PhaseFluency:
		st.Add(theme.Title.Render("Verbal Fluency"))
		st.Gap(1)
		st.Add(components.Panel(s.renderFluency(), cw))
	default:
		st.Add(theme.Correct.Render("All phases complete"))
	}

	st.Gap(1)
	board := components.ScoreBoard("Current Scores", testkit.Rows(s.session.Lines(), phase), components.InnerWidth(cw))
	st.Add(components.Panel(board, cw))
	return st.String()
}

func (s *LanguageScreen) renderNaming() string {
	var art string
	switch {
	case s.loading:
		art = theme.Hint.Render("Loading...")
	case s.pictureErr != nil:
		art = theme.Hint.Render("Image not available")
	default:
		art = theme.Body.Render(s.picture)
	}
	return "Name the object shown in the image:\n\n" + art + "\n\n" + s.input.View()
}

func (s *LanguageScreen) renderCompletion() string {
	sentence, _ := s.session.CurrentSentence()
	return theme.Stimulus.Render(sentence.Prompt) + "\n\n" + s.input.View()
}

func (s *LanguageScreen) renderFluency() string {
	letter := fmt.Sprintf("Letter: %q", strings.ToUpper(s.session.Letter()))
	return "List as many words as you can that start with:\n\n" +
		theme.Stimulus.Render(letter) + "\n\n" +
		theme.Hint.Render("(separate words with commas)") + "\n\n" + s.input.View()
}

package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-runewidth"
)

// Accept filters single characters typed into a TextInput.
type Accept func(r rune) bool

// Digits accepts 0-9.
func Digits(r rune) bool { return r >= '0' && r <= '9' }

// DigitsAndDash accepts digit span answers such as "5-8-2".
func DigitsAndDash(r rune) bool { return Digits(r) || r == '-' }

// SignedDigits accepts integer answers.
func SignedDigits(r rune) bool { return Digits(r) || r == '-' }

// TextInput wraps bubbles/textinput with mindscan styling.
type TextInput struct {
	Model    textinput.Model
	Accept   Accept
	MaxWidth int
}

// NewTextInput creates a new focused text input limited to maxWidth
// characters. The view is wide enough for the placeholder. accept may be nil
// to allow any character.
func NewTextInput(placeholder string, accept Accept, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
		ti.SetWidth(max(maxWidth, runewidth.StringWidth(placeholder)))
	}

	return TextInput{
		Model:    ti,
		Accept:   accept,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Rejected characters are dropped.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.Accept != nil {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" {
			if strings.IndexFunc(kmsg.Text, func(r rune) bool { return !t.Accept(r) }) >= 0 {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// Reset clears the input for the next item.
func (t *TextInput) Reset() {
	t.Model.Reset()
}

// Focus enables typing.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur disables typing.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input accepts keys.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

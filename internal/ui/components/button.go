package components

import "github.com/abhisek/mindscan/internal/ui/theme"

// Button is a styled, optionally disabled button.
type Button struct {
	Label    string
	Key      string
	Disabled bool
}

// NewButton creates a new button bound to a key.
func NewButton(label, key string) Button {
	return Button{Label: label, Key: key}
}

// View renders the button.
func (b Button) View() string {
	label := "▸ " + b.Label
	if b.Key != "" {
		label += " [" + b.Key + "]"
	}
	if b.Disabled {
		return theme.ButtonDisabled.Render(label)
	}
	return theme.ButtonActive.Render(label)
}

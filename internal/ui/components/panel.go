package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindscan/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every test panel so the
// stimulus, input and score boxes line up.
func ContentWidth(frameWidth int) int {
	// Leave room for panel border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 24 {
		w = 24
	}
	return w
}

// InnerWidth is the text width inside Panel(content, cw). The panel's
// width includes its border and padding.
func InnerWidth(cw int) int {
	return cw - 8
}

// Panel wraps content in a rounded-border box at the given content width.
func Panel(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 2).
		Render(content)
}

// PanelTitle renders a section heading inside a panel.
func PanelTitle(title string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Primary).
		Render(title)
}

package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindscan/internal/ui/theme"
)

// ScoreRow is one line of a score board. A negative Fraction hides the bar.
type ScoreRow struct {
	Label    string
	Value    string
	Fraction float64
	Active   bool
}

// ScoreBoard renders labelled scores with progress bars. Every row is padded
// to width so the columns stay aligned when the board is centred.
func ScoreBoard(title string, rows []ScoreRow, width int) string {
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.Label))
	}

	row := lipgloss.NewStyle().Width(width)
	var b strings.Builder
	if title != "" {
		b.WriteString(PanelTitle(title))
		b.WriteString("\n")
	}
	for _, r := range rows {
		style := theme.Body
		if r.Active {
			style = theme.Selected
		}
		label := style.Render(r.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(r.Label)))
		value := lipgloss.NewStyle().Foreground(theme.Accent).Width(8).Align(lipgloss.Right).Render(r.Value)
		line := label + " " + value
		if r.Fraction >= 0 {
			barWidth := width - lipgloss.Width(line) - 2
			if barWidth >= 4 {
				line += "  " + NewProgressBar("", r.Fraction, false, barWidth).View()
			}
		}
		b.WriteString(row.Render(line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindscan/internal/ui/theme"
)

const bannerFull = ` ███╗   ███╗██╗███╗   ██╗██████╗ ███████╗ ██████╗ █████╗ ███╗   ██╗
 ████╗ ████║██║████╗  ██║██╔══██╗██╔════╝██╔════╝██╔══██╗████╗  ██║
 ██╔████╔██║██║██╔██╗ ██║██║  ██║███████╗██║     ███████║██╔██╗ ██║
 ██║╚██╔╝██║██║██║╚██╗██║██║  ██║╚════██║██║     ██╔══██║██║╚██╗██║
 ██║ ╚═╝ ██║██║██║ ╚████║██████╔╝███████║╚██████╗██║  ██║██║ ╚████║
 ╚═╝     ╚═╝╚═╝╚═╝  ╚═══╝╚═════╝ ╚══════╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═══╝`

const bannerCompact = "M · I · N · D · S · C · A · N"

// bannerMinWidth is the narrowest content area that fits bannerFull.
const bannerMinWidth = 70

// renderBanner returns the block-letter title or its compact fallback.
func renderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerFull)
}

// renderStatsBar summarises this run's results in a double-bordered box.
func renderStatsBar(st stats, cw int, compact bool) string {
	doneStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	earlyStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	lastStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	last := dimStyle.Render("NO TESTS YET")
	if st.last != "" {
		last = lastStyle.Render("◷ " + strings.ToUpper(st.last))
	}

	var text string
	if compact {
		text = fmt.Sprintf("%s %s",
			doneStyle.Render(fmt.Sprintf("✓%d", st.completed)),
			earlyStyle.Render(fmt.Sprintf("◐%d", st.early)),
		)
	} else {
		text = fmt.Sprintf("%s  %s  %s",
			doneStyle.Render(fmt.Sprintf("✓ %d COMPLETED", st.completed)),
			earlyStyle.Render(fmt.Sprintf("◐ %d ENDED EARLY", st.early)),
			last,
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderButtons renders each menu label as a bordered button, three rows
// per item.
func renderButtons(labels []string, selected int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	buttons := make([]string, len(labels))
	for i, label := range labels {
		if i == selected {
			buttons[i] = selectedBtn.Render("▸ " + label)
		} else {
			buttons[i] = normalBtn.Render(label)
		}
	}
	return strings.Join(buttons, "\n")
}

// renderButtonsCompact renders menu items as plain lines for small
// terminals, one row per item.
func renderButtonsCompact(labels []string, selected int) string {
	lines := make([]string, len(labels))
	for i, label := range labels {
		if i == selected {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
	}
	return strings.Join(lines, "\n")
}

package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindscan/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // no tests taken yet
	MascotCelebrating                      // last test completed
	MascotAlert                            // last test ended early
)

const mascotIdle = `╭─────╮
│ ◉ ◉ │
│  ▽  │
│ ∿∿∿ │
╰─────╯`

const mascotCelebrating = `╭─────╮
│ ★ ★ │
│  ◡  │
│ ∿∿∿ │
╰─╥═╥─╯
  ╚═╝`

const mascotAlert = `╭─────╮
│ ◉ ◉ │ ?
│  ~  │
│ ∿∿∿ │
╰─────╯`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch variant {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Success
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

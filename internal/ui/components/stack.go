package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Region is a rectangle of terminal cells in content coordinates.
type Region struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Stack lays out blocks top to bottom, each centred horizontally, and
// remembers where every block landed so clicks can be mapped back to it.
type Stack struct {
	width int
	lines []string
}

// NewStack creates an empty stack for a content area of the given width.
func NewStack(width int) *Stack {
	return &Stack{width: width}
}

// Add appends a centred block and returns its region.
func (s *Stack) Add(block string) Region {
	w := lipgloss.Width(block)
	left := max((s.width-w)/2, 0)
	pad := strings.Repeat(" ", left)

	r := Region{X: left, Y: len(s.lines), W: w}
	for _, line := range strings.Split(block, "\n") {
		s.lines = append(s.lines, pad+line)
	}
	r.H = len(s.lines) - r.Y
	return r
}

// Gap appends n blank lines.
func (s *Stack) Gap(n int) {
	for i := 0; i < n; i++ {
		s.lines = append(s.lines, "")
	}
}

// String joins the rendered lines.
func (s *Stack) String() string {
	return strings.Join(s.lines, "\n")
}

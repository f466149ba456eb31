// Package stimgen builds the randomized stimuli used by the timed tests.
package stimgen

import (
	"math/rand"
	"time"
)

// Point is a position on the trail-making surface.
type Point struct {
	X float64
	Y float64
}

// Circle is a numbered trail-making target.
type Circle struct {
	Center Point
	Number int
}

// Grid is a visual search board stored row-major.
type Grid struct {
	Size    int
	Cells   []string
	Targets []int
}

// IsTarget reports whether the cell at index holds the target symbol.
func (g Grid) IsTarget(index int) bool {
	for _, t := range g.Targets {
		if t == index {
			return true
		}
	}
	return false
}

// Generator produces randomized stimuli.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a deterministic Generator.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Symbols draws count symbols uniformly with replacement from alphabet.
func (g *Generator) Symbols(alphabet []string, count int) []string {
	if len(alphabet) == 0 || count <= 0 {
		return nil
	}
	out := make([]string, count)
	for i := range out {
		out[i] = alphabet[g.rnd.Intn(len(alphabet))]
	}
	return out
}

// Grid builds a size×size board where each cell independently becomes target
// with probability p, otherwise neutral.
func (g *Generator) Grid(size int, p float64, target, neutral string) Grid {
	grid := Grid{Size: size, Cells: make([]string, size*size)}
	for i := range grid.Cells {
		if g.rnd.Float64() < p {
			grid.Cells[i] = target
			grid.Targets = append(grid.Targets, i)
			continue
		}
		grid.Cells[i] = neutral
	}
	return grid
}

// GridWithMinTargets regenerates until the board holds at least minTargets
// targets. It gives up after maxAttempts and returns the last board.
func (g *Generator) GridWithMinTargets(size int, p float64, target, neutral string, minTargets int) Grid {
	const maxAttempts = 64
	grid := g.Grid(size, p, target, neutral)
	for attempt := 1; len(grid.Targets) < minTargets && attempt < maxAttempts; attempt++ {
		grid = g.Grid(size, p, target, neutral)
	}
	return grid
}

// Circles places count circles numbered 1..count at random positions inside a
// width×height surface, keeping margin units clear of every edge. Overlap is
// not checked.
func (g *Generator) Circles(count int, width, height, margin float64) []Circle {
	spanX := width - 2*margin
	spanY := height - 2*margin
	if spanX < 0 {
		spanX = 0
	}
	if spanY < 0 {
		spanY = 0
	}
	out := make([]Circle, count)
	for i := range out {
		out[i] = Circle{
			Center: Point{
				X: g.rnd.Float64()*spanX + margin,
				Y: g.rnd.Float64()*spanY + margin,
			},
			Number: i + 1,
		}
	}
	return out
}

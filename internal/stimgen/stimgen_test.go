package stimgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolsDrawFromAlphabet(t *testing.T) {
	g := NewSeeded(1)
	alphabet := []string{"a", "b", "c"}

	got := g.Symbols(alphabet, 30)
	require.Len(t, got, 30)
	for _, s := range got {
		assert.Contains(t, alphabet, s)
	}

	assert.Nil(t, g.Symbols(nil, 5))
	assert.Nil(t, g.Symbols(alphabet, 0))
}

func TestSymbolsDeterministicForSeed(t *testing.T) {
	a := NewSeeded(42).Symbols([]string{"x", "y", "z", "w"}, 30)
	b := NewSeeded(42).Symbols([]string{"x", "y", "z", "w"}, 30)
	assert.Equal(t, a, b)
}

func TestGridTargetsMatchCells(t *testing.T) {
	g := NewSeeded(7)
	grid := g.Grid(6, 0.3, "T", ".")

	require.Len(t, grid.Cells, 36)
	for i, cell := range grid.Cells {
		assert.Equal(t, cell == "T", grid.IsTarget(i), "cell %d", i)
	}
}

func TestGridProbabilityBounds(t *testing.T) {
	g := NewSeeded(3)
	assert.Empty(t, g.Grid(6, 0, "T", ".").Targets)
	assert.Len(t, g.Grid(6, 1, "T", ".").Targets, 36)
}

func TestGridWithMinTargets(t *testing.T) {
	g := NewSeeded(11)
	for i := 0; i < 20; i++ {
		grid := g.GridWithMinTargets(2, 0.3, "T", ".", 1)
		assert.NotEmpty(t, grid.Targets)
	}

	// Unreachable minimum gives up instead of spinning.
	grid := g.GridWithMinTargets(2, 0, "T", ".", 1)
	assert.Empty(t, grid.Targets)
}

func TestCirclesStayInsideMargins(t *testing.T) {
	g := NewSeeded(5)
	circles := g.Circles(12, 400, 400, 50)

	require.Len(t, circles, 12)
	for i, c := range circles {
		assert.Equal(t, i+1, c.Number)
		assert.GreaterOrEqual(t, c.Center.X, 50.0)
		assert.LessOrEqual(t, c.Center.X, 350.0)
		assert.GreaterOrEqual(t, c.Center.Y, 50.0)
		assert.LessOrEqual(t, c.Center.Y, 350.0)
	}
}

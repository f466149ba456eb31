package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackCentresBlocks(t *testing.T) {
	s := NewStack(20)
	title := s.Add("title")
	s.Gap(1)
	box := s.Add("ab\ncd")

	assert.Equal(t, Region{X: 7, Y: 0, W: 5, H: 1}, title)
	assert.Equal(t, Region{X: 9, Y: 2, W: 2, H: 2}, box)
	assert.Equal(t, "       title\n\n         ab\n         cd", s.String())
}

func TestRegionContains(t *testing.T) {
	r := Region{X: 2, Y: 3, W: 4, H: 2}
	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 4))
	assert.False(t, r.Contains(6, 4))
	assert.False(t, r.Contains(2, 5))
	assert.False(t, r.Contains(1, 3))
}

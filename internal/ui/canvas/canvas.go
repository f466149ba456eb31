// Package canvas rasterizes a continuous drawing surface onto terminal cells.
//
// The surface uses its own units (the trail test draws on 400x400). Each cell
// covers a fixed rectangle of the surface, so a click on a cell maps back to
// the surface point at the cell centre.
package canvas

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/abhisek/mindscan/internal/stimgen"
)

type cell struct {
	text  string
	style *lipgloss.Style
	// cont marks the trailing cells of a wide rune.
	cont bool
}

// Canvas is a cols x rows character raster over a width x height surface.
type Canvas struct {
	cols, rows    int
	width, height float64
	cells         []cell
}

// New creates a blank canvas.
func New(cols, rows int, width, height float64) *Canvas {
	cols = max(cols, 1)
	rows = max(rows, 1)
	c := &Canvas{cols: cols, rows: rows, width: width, height: height, cells: make([]cell, cols*rows)}
	c.Clear()
	return c
}

// Size returns the raster dimensions.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{text: " "}
	}
}

// ToCell maps a surface point to the cell containing it.
func (c *Canvas) ToCell(p stimgen.Point) (col, row int) {
	col = int(p.X / c.width * float64(c.cols))
	row = int(p.Y / c.height * float64(c.rows))
	return clamp(col, 0, c.cols-1), clamp(row, 0, c.rows-1)
}

// ToSurface maps a cell to the surface point at its centre.
func (c *Canvas) ToSurface(col, row int) stimgen.Point {
	return stimgen.Point{
		X: (float64(col) + 0.5) * c.width / float64(c.cols),
		Y: (float64(row) + 0.5) * c.height / float64(c.rows),
	}
}

// Set writes a single-cell glyph.
func (c *Canvas) Set(col, row int, glyph string, style *lipgloss.Style) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = cell{text: glyph, style: style}
}

// Line draws a straight segment between two surface points with Bresenham's
// algorithm. Endpoints are included.
func (c *Canvas) Line(a, b stimgen.Point, glyph string, style *lipgloss.Style) {
	x0, y0 := c.ToCell(a)
	x1, y1 := c.ToCell(b)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	for {
		c.Set(x0, y0, glyph, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Label writes text centred on a surface point. Wide runes occupy two cells.
// The label is shifted to stay inside the canvas.
func (c *Canvas) Label(p stimgen.Point, text string, style *lipgloss.Style) {
	start, row, _ := c.LabelSpan(p, text)
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if start+rw > c.cols {
			return
		}
		c.Set(start, row, string(r), style)
		for k := 1; k < rw; k++ {
			c.cells[row*c.cols+start+k] = cell{cont: true}
		}
		start += rw
	}
}

// LabelSpan returns the cells Label would cover for text at p.
func (c *Canvas) LabelSpan(p stimgen.Point, text string) (start, row, width int) {
	col, row := c.ToCell(p)
	width = runewidth.StringWidth(text)
	start = clamp(col-width/2, 0, max(c.cols-width, 0))
	return start, row, width
}

// Render returns the raster as newline-separated rows. Adjacent cells sharing
// a style are rendered as one run, so a label stays a contiguous string.
func (c *Canvas) Render() string {
	var b, run strings.Builder
	var style *lipgloss.Style
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if style != nil {
			b.WriteString(style.Render(run.String()))
		} else {
			b.WriteString(run.String())
		}
		run.Reset()
	}
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			flush()
			b.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			if cl.cont {
				continue
			}
			if cl.style != style {
				flush()
				style = cl.style
			}
			run.WriteString(cl.text)
		}
	}
	flush()
	return b.String()
}

// Plain returns the raster without styles.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			if cl := c.cells[row*c.cols+col]; !cl.cont {
				b.WriteString(cl.text)
			}
		}
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

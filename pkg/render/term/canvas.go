package term

import (
	"strings"
	"unicode/utf8"
)

// Glyphs used by Draw.
const (
	GlyphLink  = '·'
	GlyphDot   = '•'
	GlyphRoot  = '◉'
	GlyphBlank = ' '
)

// Canvas is a grid of runes addressed by column and row, origin top-left.
type Canvas struct {
	cols, rows int
	cells      []rune
}

// NewCanvas returns a blank canvas. Negative sizes are treated as zero.
func NewCanvas(cols, rows int) *Canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	c := &Canvas{cols: cols, rows: rows, cells: make([]rune, cols*rows)}
	c.Clear()
	return c
}

func (c *Canvas) Cols() int { return c.cols }
func (c *Canvas) Rows() int { return c.rows }

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = GlyphBlank
	}
}

// At returns the rune at (x, y), or GlyphBlank outside the grid.
func (c *Canvas) At(x, y int) rune {
	if !c.inside(x, y) {
		return GlyphBlank
	}
	return c.cells[y*c.cols+x]
}

// Set writes r at (x, y); writes outside the grid are dropped.
func (c *Canvas) Set(x, y int, r rune) {
	if c.inside(x, y) {
		c.cells[y*c.cols+x] = r
	}
}

// Line draws a Bresenham line between two cells, clipping to the grid.
func (c *Canvas) Line(x0, y0, x1, y1 int, r rune) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Set(x0, y0, r)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Text writes s starting at (x, y). With alignEnd the last rune lands on x.
func (c *Canvas) Text(x, y int, s string, alignEnd bool) {
	if alignEnd {
		x -= utf8.RuneCountInString(s) - 1
	}
	for _, r := range s {
		c.Set(x, y, r)
		x++
	}
}

// String renders the grid, one line per row, with trailing blanks trimmed.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.rows; y++ {
		row := string(c.cells[y*c.cols : (y+1)*c.cols])
		b.WriteString(strings.TrimRight(row, string(GlyphBlank)))
		if y < c.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.cols && y < c.rows
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

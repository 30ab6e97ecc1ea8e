package term

import (
	"math"

	"github.com/matzehuels/radialmap/pkg/layout/link"
	"github.com/matzehuels/radialmap/pkg/mindmap"
	"github.com/matzehuels/radialmap/pkg/view"
)

// CellAspect is the height of a terminal cell in units of its width.
const CellAspect = 2

// Viewport sizes s for a grid of cols×rows cells.
func Viewport(s *view.State, cols, rows int) {
	s.Resize(cols, rows*CellAspect)
}

// Draw clears c and draws t through s. The caller sizes s with Viewport.
// Links follow s.CurvedLinks; step and tangent strength come from opts.
func Draw(c *Canvas, t *mindmap.Tree, s view.State, opts link.Options) {
	c.Clear()
	if t == nil || t.Len() == 0 {
		return
	}
	opts.Curved = s.CurvedLinks

	cell := func(x, y float64) (int, int) {
		sx, sy := s.WorldToScreen(x, y)
		return int(math.Floor(sx)), int(math.Floor(sy / CellAspect))
	}

	for _, lk := range link.All(t, opts) {
		for i := 1; i < len(lk.Points); i++ {
			x0, y0 := cell(lk.Points[i-1].X, lk.Points[i-1].Y)
			x1, y1 := cell(lk.Points[i].X, lk.Points[i].Y)
			c.Line(x0, y0, x1, y1, GlyphLink)
		}
	}

	if t.Len() > 1 {
		for _, n := range t.Nodes() {
			x, y := cell(n.X, n.Y)
			c.Set(x, y, GlyphDot)
		}
	}
	x, y := cell(0, 0)
	c.Set(x, y, GlyphRoot)

	for _, lb := range view.Labels(t, s, view.LabelPad) {
		x, y := cell(lb.X, lb.Y)
		end := lb.Align == view.AlignEnd
		// Keep one cell between the anchor and the text so the dot stays visible.
		if end {
			x--
		} else {
			x++
		}
		c.Text(x, y, lb.Text, end)
	}
}

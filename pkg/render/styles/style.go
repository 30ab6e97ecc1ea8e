package styles

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/matzehuels/radialmap/pkg/graph"
)

// Style defines the visual appearance of a radial map.
type Style interface {
	// Name returns the style identifier (graph.StyleSimple, graph.StyleHanddrawn).
	Name() string
	// Palette returns the colours shared with raster sinks.
	Palette() Palette
	// RenderDefs writes SVG <defs> and <style> content.
	RenderDefs(buf *bytes.Buffer)
	// RenderLink writes a single connector.
	RenderLink(buf *bytes.Buffer, l Link)
	// RenderDot writes a node endpoint marker.
	RenderDot(buf *bytes.Buffer, d Dot)
	// RenderLabel writes a node caption.
	RenderLabel(buf *bytes.Buffer, l Label)
}

// Point is an SVG coordinate.
type Point struct{ X, Y float64 }

// Link contains the data needed to render one connector.
type Link struct {
	FromID, ToID string
	Points       []Point
	Width        float64 // Stroke width in screen pixels
}

// Dot is a filled endpoint marker.
type Dot struct {
	ID   string
	X, Y float64
	R    float64
}

// Label is a positioned caption.
type Label struct {
	ID       string
	Text     string
	X, Y     float64
	Rotation float64 // Degrees, clockwise (SVG convention)
	Anchor   string  // "start" or "end"
	Size     float64 // Font size in SVG units
}

// Palette lists the colours of a style.
type Palette struct {
	Background color.RGBA
	Link       color.RGBA
	Dot        color.RGBA
	Text       color.RGBA
}

// Drawing constants in world units unless noted.
const (
	EndpointRadius = 0.75
	LinkWidth      = 1.0 // screen pixels

	// StrokeFontHeight is the cap height of the classic stroke font in font
	// units. A label scale of 0.02 yields text about 2.4 world units tall.
	StrokeFontHeight = 119.05
)

// FontSize converts a label scale (see view.State.LabelScale) to a font size
// in world units.
func FontSize(scale float64) float64 {
	return scale * StrokeFontHeight
}

// ByName returns the style for a graph.Style* name. Unknown names fall back
// to Simple; seed is used by the handdrawn style only.
func ByName(name string, seed uint64) Style {
	if name == graph.StyleHanddrawn {
		return NewHanddrawn(seed)
	}
	return Simple{}
}

// rgba formats c as a CSS colour.
func rgba(c color.RGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", c.R, c.G, c.B, float64(c.A)/255)
}

// polylinePoints formats points for an SVG points attribute.
func polylinePoints(buf *bytes.Buffer, pts []Point) {
	for i, p := range pts {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%.3f,%.3f", p.X, p.Y)
	}
}

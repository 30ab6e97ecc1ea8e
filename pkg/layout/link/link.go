// Package link generates connector geometry between laid-out mind-map nodes.
//
// A link joins a parent anchor P to a child anchor C. Straight links are the
// two-point segment [P, C]. Curved links sample a cubic Bézier whose inner
// control points are pulled radially: the first outward from P along P's
// angle, the second inward from C along C's angle, each by TangentStrength
// radial steps. Connectors therefore leave and enter nodes along the radial
// direction.
package link

import (
	"math"

	"github.com/matzehuels/radialmap/pkg/mindmap"
)

// Defaults for [Options].
const (
	DefaultSamples         = 28
	DefaultTangentStrength = 0.55
)

// Point is a world-space coordinate.
type Point struct {
	X, Y float64
}

// Anchor is a node's polar and Cartesian position.
type Anchor struct {
	Point
	Radius float64
	Angle  float64
}

// AnchorOf returns the anchor of a laid-out node.
func AnchorOf(n *mindmap.Node) Anchor {
	return Anchor{Point: Point{X: n.X, Y: n.Y}, Radius: n.Radius, Angle: n.Angle}
}

// Options controls link generation.
type Options struct {
	Curved          bool
	Samples         int     // Bézier segments; values below 1 are treated as 1
	TangentStrength float64 // Fraction of RadiusStep used for control points
	RadiusStep      float64 // Must match the layout's radius step
}

// DefaultOptions returns straight-link options with curve defaults filled in.
func DefaultOptions(radiusStep float64) Options {
	return Options{
		Samples:         DefaultSamples,
		TangentStrength: DefaultTangentStrength,
		RadiusStep:      radiusStep,
	}
}

// Polar converts polar coordinates to a Point.
func Polar(r, a float64) Point {
	return Point{X: math.Cos(a) * r, Y: math.Sin(a) * r}
}

// Bezier3 evaluates a cubic Bézier in Bernstein form at t.
func Bezier3(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Point{
		X: b0*p0.X + b1*p1.X + b2*p2.X + b3*p3.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y + b3*p3.Y,
	}
}

// Straight returns the two-point polyline [p, c].
func Straight(p, c Anchor) []Point {
	return []Point{p.Point, c.Point}
}

// Controls returns the four Bézier control points of a curved link.
func Controls(p, c Anchor, opts Options) (p0, p1, p2, p3 Point) {
	pull := opts.TangentStrength * opts.RadiusStep
	return p.Point, Polar(p.Radius+pull, p.Angle), Polar(c.Radius-pull, c.Angle), c.Point
}

// Curved samples the Bézier from p to c at t = i/Samples for i in
// [0, Samples], returning Samples+1 points. The first and last points are
// exactly the anchors.
func Curved(p, c Anchor, opts Options) []Point {
	n := max(1, opts.Samples)
	p0, p1, p2, p3 := Controls(p, c, opts)

	pts := make([]Point, n+1)
	pts[0] = p0
	for i := 1; i < n; i++ {
		pts[i] = Bezier3(p0, p1, p2, p3, float64(i)/float64(n))
	}
	pts[n] = p3
	return pts
}

// Generate returns the polyline for one link according to opts.Curved.
func Generate(p, c Anchor, opts Options) []Point {
	if opts.Curved {
		return Curved(p, c, opts)
	}
	return Straight(p, c)
}

// Link is the geometry of one parent-child connector.
type Link struct {
	From   mindmap.NodeID
	To     mindmap.NodeID
	Points []Point
}

// All generates a link for every parent-child pair of a laid-out tree, in
// pre-order of the child.
func All(t *mindmap.Tree, opts Options) []Link {
	if t == nil || t.Len() < 2 {
		return nil
	}
	links := make([]Link, 0, t.Len()-1)
	t.Edges(func(parent, child mindmap.NodeID) {
		links = append(links, Link{
			From:   parent,
			To:     child,
			Points: Generate(AnchorOf(t.Node(parent)), AnchorOf(t.Node(child)), opts),
		})
	})
	return links
}

package link

import (
	"math"
	"testing"

	"github.com/matzehuels/radialmap/pkg/layout"
	"github.com/matzehuels/radialmap/pkg/mindmap"
)

const tol = 1e-6

func approx(a, b Point) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func anchor(r, a float64) Anchor {
	return Anchor{Point: Polar(r, a), Radius: r, Angle: a}
}

func TestBezier3Endpoints(t *testing.T) {
	p0, p1, p2, p3 := Point{0, 0}, Point{1, 2}, Point{3, 2}, Point{4, 0}
	if got := Bezier3(p0, p1, p2, p3, 0); got != p0 {
		t.Errorf("B(0) = %v, want %v", got, p0)
	}
	if got := Bezier3(p0, p1, p2, p3, 1); got != p3 {
		t.Errorf("B(1) = %v, want %v", got, p3)
	}
	// Symmetric control polygon: midpoint is (2, 1.5).
	if got := Bezier3(p0, p1, p2, p3, 0.5); !approx(got, Point{2, 1.5}) {
		t.Errorf("B(0.5) = %v, want (2, 1.5)", got)
	}
}

func TestStraight(t *testing.T) {
	p, c := anchor(35, 1), anchor(70, 1.2)
	pts := Straight(p, c)
	if len(pts) != 2 || pts[0] != p.Point || pts[1] != c.Point {
		t.Errorf("Straight = %v, want [%v %v]", pts, p.Point, c.Point)
	}
	if got := Generate(p, c, Options{}); len(got) != 2 {
		t.Errorf("Generate(straight) returned %d points", len(got))
	}
}

func TestCurved(t *testing.T) {
	p, c := anchor(35, 0.3), anchor(70, 1.1)
	for _, samples := range []int{1, 2, 28, 100} {
		opts := Options{Curved: true, Samples: samples, TangentStrength: 0.55, RadiusStep: 35}
		pts := Generate(p, c, opts)
		if len(pts) != samples+1 {
			t.Errorf("samples=%d: got %d points, want %d", samples, len(pts), samples+1)
			continue
		}
		if !approx(pts[0], p.Point) || !approx(pts[samples], c.Point) {
			t.Errorf("samples=%d: endpoints %v, %v", samples, pts[0], pts[samples])
		}
	}
}

func TestCurvedClampsSamples(t *testing.T) {
	p, c := anchor(0, 0), anchor(35, 2)
	for _, samples := range []int{0, -5} {
		pts := Curved(p, c, Options{Samples: samples, TangentStrength: 0.55, RadiusStep: 35})
		if len(pts) != 2 {
			t.Errorf("samples=%d: got %d points, want 2", samples, len(pts))
		}
	}
}

func TestControls(t *testing.T) {
	p, c := anchor(35, 0), anchor(70, math.Pi/2)
	opts := Options{TangentStrength: 0.55, RadiusStep: 35}
	_, p1, p2, _ := Controls(p, c, opts)

	pull := 0.55 * 35
	if !approx(p1, Point{35 + pull, 0}) {
		t.Errorf("p1 = %v, want pulled outward along angle 0", p1)
	}
	if !approx(p2, Point{0, 70 - pull}) {
		t.Errorf("p2 = %v, want pulled inward along angle π/2", p2)
	}
}

func TestCurvedMatchesBezier(t *testing.T) {
	p, c := anchor(35, 1), anchor(70, 2)
	opts := Options{Samples: 4, TangentStrength: 0.55, RadiusStep: 35}
	p0, p1, p2, p3 := Controls(p, c, opts)
	pts := Curved(p, c, opts)
	for i, pt := range pts {
		want := Bezier3(p0, p1, p2, p3, float64(i)/4)
		if !approx(pt, want) {
			t.Errorf("point %d = %v, want %v", i, pt, want)
		}
	}
}

func TestAll(t *testing.T) {
	b := mindmap.NewBuilder(mindmap.ChildOrderDocument)
	root, _ := b.Root("r", "")
	a, _ := b.Child(root, "a", "")
	b.Child(a, "a1", "")
	b.Child(root, "b", "")
	tree, _ := b.Build()
	if err := layout.Compute(tree, layout.DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	opts := DefaultOptions(layout.DefaultRadiusStep)
	opts.Curved = true
	links := All(tree, opts)
	if len(links) != tree.Len()-1 {
		t.Fatalf("len(All) = %d, want %d", len(links), tree.Len()-1)
	}
	for i, l := range links {
		if l.To != mindmap.NodeID(i+1) || tree.Parent(l.To) != l.From {
			t.Errorf("link %d = %d->%d, want pre-order parent-child", i, l.From, l.To)
		}
		if len(l.Points) != DefaultSamples+1 {
			t.Errorf("link %d has %d points", i, len(l.Points))
		}
		from, to := tree.Node(l.From), tree.Node(l.To)
		if !approx(l.Points[0], Point{from.X, from.Y}) || !approx(l.Points[len(l.Points)-1], Point{to.X, to.Y}) {
			t.Errorf("link %d does not start and end at its anchors", i)
		}
	}

	if All(nil, opts) != nil {
		t.Error("All(nil) should be nil")
	}
}

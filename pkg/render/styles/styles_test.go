package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/radialmap/pkg/graph"
)

func TestByName(t *testing.T) {
	if got := ByName(graph.StyleHanddrawn, 1).Name(); got != graph.StyleHanddrawn {
		t.Errorf("ByName(handdrawn) = %s", got)
	}
	if got := ByName("unknown", 1).Name(); got != graph.StyleSimple {
		t.Errorf("ByName(unknown) = %s, want simple", got)
	}
}

func TestSimpleLink(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderLink(&buf, Link{FromID: "a", ToID: "b&c", Points: []Point{{0, 0}, {1.5, -2}}, Width: 1})
	got := buf.String()
	if !strings.Contains(got, `points="0.000,0.000 1.500,-2.000"`) {
		t.Errorf("unexpected points: %s", got)
	}
	if !strings.Contains(got, `data-to="b&amp;c"`) {
		t.Errorf("IDs not escaped: %s", got)
	}
}

func TestSimpleLabel(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderLabel(&buf, Label{ID: "n", Text: "<Idea>", X: 1, Y: 2, Rotation: -30, Anchor: "end", Size: 2.4})
	got := buf.String()
	for _, want := range []string{`text-anchor="end"`, `rotate(-30.000 1.000 2.000)`, "&lt;Idea&gt;"} {
		if !strings.Contains(got, want) {
			t.Errorf("label missing %q: %s", want, got)
		}
	}

	buf.Reset()
	Simple{}.RenderLabel(&buf, Label{ID: "r", Text: "root", Anchor: "start", Size: 2})
	if strings.Contains(buf.String(), "rotate") {
		t.Errorf("unrotated label has a transform: %s", buf.String())
	}
}

func TestHanddrawnDeterministic(t *testing.T) {
	l := Link{FromID: "a", ToID: "b", Points: []Point{{0, 0}, {5, 5}, {10, 0}}, Width: 1}
	render := func(seed uint64, l Link) string {
		var buf bytes.Buffer
		NewHanddrawn(seed).RenderLink(&buf, l)
		return buf.String()
	}

	if render(42, l) != render(42, l) {
		t.Error("same seed produced different output")
	}
	if render(42, l) == render(43, l) {
		t.Error("different seeds produced identical output")
	}
	other := l
	other.ToID = "c"
	if render(42, l) == render(42, other) {
		t.Error("different links produced identical output")
	}
	if n := strings.Count(render(1, l), "<polyline"); n != 2 {
		t.Errorf("handdrawn link drew %d strokes, want 2", n)
	}
}

func TestHanddrawnKeepsEndpoints(t *testing.T) {
	h := NewHanddrawn(9)
	l := Link{FromID: "a", ToID: "b", Points: []Point{{0, 0}, {10, 0}}}
	pts := h.wobble(l, 0)
	if len(pts) != 3 {
		t.Fatalf("straight link wobbled into %d points, want 3", len(pts))
	}
	if pts[0] != l.Points[0] || pts[2] != l.Points[1] {
		t.Errorf("endpoints moved: %v", pts)
	}
	if pts[1].X != 5 {
		t.Errorf("midpoint should only move perpendicular to the link: %v", pts[1])
	}
	if d := pts[1].Y; d > wobbleAmplitude || d < -wobbleAmplitude {
		t.Errorf("wobble %v exceeds amplitude", d)
	}
}

func TestFontSize(t *testing.T) {
	if got := FontSize(0.02); got < 2.3 || got > 2.5 {
		t.Errorf("FontSize(0.02) = %v, want about 2.4", got)
	}
}

package view

import (
	"math"
	"testing"

	"github.com/matzehuels/radialmap/pkg/layout"
	"github.com/matzehuels/radialmap/pkg/mindmap"
)

// laidOut returns a root with leaves "a" at π/3, "b1" (under "b") at π and
// "c" at 5π/3.
func laidOut(t *testing.T) *mindmap.Tree {
	t.Helper()
	b := mindmap.NewBuilder(mindmap.ChildOrderDocument)
	root, _ := b.Root("root", "Root")
	b.Child(root, "a", "East")
	mid, _ := b.Child(root, "b", "West")
	b.Child(mid, "b1", "Far west")
	b.Child(root, "c", "South east")
	tree, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if err := layout.Compute(tree, layout.DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	return tree
}

func TestPlaceLabelRoot(t *testing.T) {
	tree := laidOut(t)
	s := Default()
	s.RotationDeg = 40

	l, ok := PlaceLabel(tree, tree.Root(), s, LabelPad)
	if !ok {
		t.Fatal("root label hidden")
	}
	if l.X != RootLabelOffset || l.Y != 0 || l.Align != AlignStart {
		t.Errorf("root label = %+v", l)
	}
	if l.ScreenRotation(s) != 0 {
		t.Errorf("root screen rotation = %v, want 0", l.ScreenRotation(s))
	}

	s.LeavesOnly = true
	if _, ok := PlaceLabel(tree, tree.Root(), s, LabelPad); !ok {
		t.Error("root label must stay visible in leaves-only mode")
	}
}

func TestPlaceLabelFlip(t *testing.T) {
	tree := laidOut(t)
	s := Default()

	east, _ := tree.Lookup("a")
	west, _ := tree.Lookup("b1")

	le, _ := PlaceLabel(tree, east, s, LabelPad)
	if le.Align != AlignStart {
		t.Errorf("label at angle %v should be start-aligned", tree.Node(east).Angle)
	}
	lw, _ := PlaceLabel(tree, west, s, LabelPad)
	if lw.Align != AlignEnd {
		t.Errorf("label at angle %v should be end-aligned", tree.Node(west).Angle)
	}
	want := tree.Node(west).Angle*180/math.Pi + 180
	if math.Abs(lw.Rotation-want) > 1e-9 {
		t.Errorf("flipped rotation = %v, want %v", lw.Rotation, want)
	}

	// Rotating the camera by 180° swaps the sides.
	s.RotationDeg = 180
	lw, _ = PlaceLabel(tree, west, s, LabelPad)
	if lw.Align != AlignStart {
		t.Error("west label should be start-aligned when the camera is rotated by 180°")
	}
	if got := lw.ScreenRotation(s); math.Abs(got-(tree.Node(west).Angle*180/math.Pi+180)) > 1e-9 {
		t.Errorf("screen rotation = %v", got)
	}
}

func TestPlaceLabelPad(t *testing.T) {
	tree := laidOut(t)
	id, _ := tree.Lookup("b1")
	n := tree.Node(id)
	l, _ := PlaceLabel(tree, id, Default(), LabelPad)

	got := math.Hypot(l.X, l.Y)
	if math.Abs(got-(n.Radius+LabelPad)) > 1e-9 {
		t.Errorf("label radius = %v, want %v", got, n.Radius+LabelPad)
	}
}

func TestLabelsLeavesOnly(t *testing.T) {
	tree := laidOut(t)
	s := Default()
	if got := len(Labels(tree, s, LabelPad)); got != tree.Len() {
		t.Errorf("len(Labels) = %d, want %d", got, tree.Len())
	}
	s.LeavesOnly = true
	labels := Labels(tree, s, LabelPad)
	for _, l := range labels {
		if n := tree.Node(l.Node); l.Node != tree.Root() && !n.IsLeaf() {
			t.Errorf("internal node %s labelled in leaves-only mode", n.ID)
		}
	}
	if len(labels) != 4 {
		t.Errorf("len(Labels) = %d, want 4 (root + 3 leaves)", len(labels))
	}
}

func TestAlignString(t *testing.T) {
	if AlignStart.String() != "start" || AlignEnd.String() != "end" {
		t.Errorf("Align strings = %q, %q", AlignStart, AlignEnd)
	}
}

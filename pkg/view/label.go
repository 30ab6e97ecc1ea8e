package view

import (
	"math"

	"github.com/matzehuels/radialmap/pkg/mindmap"
)

// LabelPad is the distance in world units between a node and its label anchor.
const LabelPad = 3.0

// RootLabelOffset is the x offset of the root label from the origin.
const RootLabelOffset = 3.0

// Align is the horizontal alignment of a label relative to its anchor, along
// the label's baseline.
type Align int

const (
	// AlignStart places the first character at the anchor.
	AlignStart Align = iota
	// AlignEnd places the last character at the anchor.
	AlignEnd
)

// String returns the SVG text-anchor value.
func (a Align) String() string {
	if a == AlignEnd {
		return "end"
	}
	return "start"
}

// Label is a positioned node caption. Rotation is in degrees,
// counter-clockwise, in the world frame; add the camera rotation for the
// on-screen angle.
type Label struct {
	Node     mindmap.NodeID
	Text     string
	X, Y     float64
	Rotation float64
	Align    Align
}

// ScreenRotation returns the label's on-screen angle under s.
func (l Label) ScreenRotation(s State) float64 {
	return l.Rotation + s.RotationDeg
}

// PlaceLabel positions the label of n under view state s. It reports false
// when the label is hidden (internal nodes in leaves-only mode).
func PlaceLabel(t *mindmap.Tree, n mindmap.NodeID, s State, pad float64) (Label, bool) {
	node := t.Node(n)
	if n == t.Root() {
		// Counter-rotate so the root reads horizontally on screen.
		return Label{Node: n, Text: node.Text, X: RootLabelOffset, Y: 0, Rotation: -s.RotationDeg, Align: AlignStart}, true
	}
	if s.LeavesOnly && !node.IsLeaf() {
		return Label{}, false
	}

	dx, dy := 1.0, 0.0
	if l := math.Hypot(node.X, node.Y); l > 1e-6 {
		dx, dy = node.X/l, node.Y/l
	}

	rot := s.RotationDeg * math.Pi / 180
	screen := (node.Angle + rot) * 180 / math.Pi
	align := AlignStart
	if math.Cos(node.Angle+rot) < 0 {
		screen += 180
		align = AlignEnd
	}
	return Label{
		Node:     n,
		Text:     node.Text,
		X:        node.X + dx*pad,
		Y:        node.Y + dy*pad,
		Rotation: screen - s.RotationDeg,
		Align:    align,
	}, true
}

// Labels places every visible label in pre-order.
func Labels(t *mindmap.Tree, s State, pad float64) []Label {
	out := make([]Label, 0, t.Len())
	for i := range t.Len() {
		if l, ok := PlaceLabel(t, mindmap.NodeID(i), s, pad); ok {
			out = append(out, l)
		}
	}
	return out
}

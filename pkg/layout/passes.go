package layout

import (
	"math"

	"github.com/matzehuels/radialmap/pkg/mindmap"
)

// CountLeaves sets Depth for n (to depth) and all of its descendants, and
// LeafCount for the same nodes. A leaf counts 1; an internal node counts the
// sum over its children, floored at 1. It returns LeafCount(n).
func CountLeaves(t *mindmap.Tree, n mindmap.NodeID, depth int) int {
	t.Node(n).Depth = depth

	// Collect the subtree in pre-order, setting depths on the way down.
	order := []mindmap.NodeID{n}
	stack := []mindmap.NodeID{n}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		d := t.Node(id).Depth + 1
		for _, c := range t.Children(id) {
			t.Node(c).Depth = d
			order = append(order, c)
			stack = append(stack, c)
		}
	}

	// Reverse pre-order visits every child before its parent.
	for i := len(order) - 1; i >= 0; i-- {
		node := t.Node(order[i])
		sum := 0
		for _, c := range node.Children {
			sum += t.Node(c).LeafCount
		}
		node.LeafCount = max(1, sum)
	}
	return t.Node(n).LeafCount
}

// AssignAngles gives n the sector [start, end) and subdivides it among the
// descendants of n in child order, each child receiving a share proportional
// to its LeafCount. The last child's sector always ends exactly at its
// parent's end. [CountLeaves] must have run on the subtree first.
func AssignAngles(t *mindmap.Tree, n mindmap.NodeID, start, end float64) {
	type span struct {
		id         mindmap.NodeID
		start, end float64
	}
	stack := []span{{n, start, end}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := t.Node(s.id)
		node.SectorStart = s.start
		node.SectorEnd = s.end
		node.Angle = (s.start + s.end) / 2

		kids := node.Children
		if len(kids) == 0 {
			continue
		}
		total := 0
		for _, c := range kids {
			total += t.Node(c).LeafCount
		}
		total = max(1, total)

		width := s.end - s.start
		cursor := s.start
		for i, c := range kids {
			next := s.end
			if i < len(kids)-1 {
				next = cursor + width*float64(t.Node(c).LeafCount)/float64(total)
			}
			stack = append(stack, span{c, cursor, next})
			cursor = next
		}
	}
}

// AssignPositions sets Radius = Depth*radiusStep and the Cartesian position
// for n and all of its descendants. A depth-0 node lands exactly on the origin.
func AssignPositions(t *mindmap.Tree, n mindmap.NodeID, radiusStep float64) {
	stack := []mindmap.NodeID{n}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := t.Node(id)
		node.Radius = float64(node.Depth) * radiusStep
		if node.Radius == 0 {
			node.X, node.Y = 0, 0
		} else {
			node.X = math.Cos(node.Angle) * node.Radius
			node.Y = math.Sin(node.Angle) * node.Radius
		}
		stack = append(stack, node.Children...)
	}
}

// Sector is an angular interval assigned to a node.
type Sector struct {
	Node       mindmap.NodeID
	Start, End float64
}

// Width returns End - Start.
func (s Sector) Width() float64 { return s.End - s.Start }

// Sectors returns the sectors of n's children in child order.
func Sectors(t *mindmap.Tree, n mindmap.NodeID) []Sector {
	kids := t.Children(n)
	out := make([]Sector, len(kids))
	for i, c := range kids {
		node := t.Node(c)
		out[i] = Sector{Node: c, Start: node.SectorStart, End: node.SectorEnd}
	}
	return out
}

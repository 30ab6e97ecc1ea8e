package mindmap

import "errors"

var (
	// ErrNoRoot is returned by [Builder.Build] when no root was added, and by
	// the loaders when a document contains no root node.
	ErrNoRoot = errors.New("mind map has no root node")

	// ErrDuplicateRoot is returned by [Builder.Root] when called twice.
	ErrDuplicateRoot = errors.New("mind map already has a root node")

	// ErrDuplicateNodeID is returned when two nodes share an identifier.
	// Identifiers are the stable keys used by serialized layouts.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownParent is returned by [Builder.Child] for a handle that was not
	// produced by the same builder.
	ErrUnknownParent = errors.New("unknown parent handle")
)

// NodeID addresses a node inside a [Tree]. It is the node's index in the
// arena and is only meaningful for the tree that produced it.
type NodeID int

// None is the parent of the root.
const None NodeID = -1

// Node is a single mind-map entry together with the geometry assigned to it
// by the layout passes. Angles are radians measured counter-clockwise from
// the positive x-axis.
type Node struct {
	ID       string   // Stable unique identifier
	Text     string   // Display label (never empty after Build)
	Parent   NodeID   // None for the root
	Children []NodeID // Ordered per the tree's ChildOrder

	Depth       int     // Edges from the root
	LeafCount   int     // Leaves in the subtree, at least 1
	SectorStart float64 // Assigned angular sector [SectorStart, SectorEnd)
	SectorEnd   float64
	Angle       float64 // Sector midpoint
	Radius      float64 // Depth * radius step
	X, Y        float64 // World position
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Tree is an arena of nodes in pre-order. The root is always [Tree.Root].
//
// Structure is fixed after Build; only the geometry fields of each Node are
// rewritten, by the layout package. A Tree is not safe for concurrent layout
// runs without external synchronization.
type Tree struct {
	nodes []Node
	index map[string]NodeID
	order ChildOrder
}

// Root returns the root's ID. It is always 0.
func (t *Tree) Root() NodeID { return 0 }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Order returns the sibling ordering the tree was built with.
func (t *Tree) Order() ChildOrder { return t.order }

// Node returns the node stored at id. The pointer stays valid for the life
// of the tree. It panics if id is out of range.
func (t *Tree) Node(id NodeID) *Node { return &t.nodes[id] }

// Nodes returns the arena in pre-order. Callers must not append to or
// reorder the returned slice.
func (t *Tree) Nodes() []Node { return t.nodes }

// Children returns the ordered children of id.
func (t *Tree) Children(id NodeID) []NodeID { return t.nodes[id].Children }

// Parent returns the parent of id, or None for the root.
func (t *Tree) Parent(id NodeID) NodeID { return t.nodes[id].Parent }

// Lookup finds a node by its string identifier.
func (t *Tree) Lookup(id string) (NodeID, bool) {
	n, ok := t.index[id]
	return n, ok
}

// Leaves returns the number of leaf nodes.
func (t *Tree) Leaves() int {
	count := 0
	for i := range t.nodes {
		if t.nodes[i].IsLeaf() {
			count++
		}
	}
	return count
}

// Height returns the length of the longest root-to-leaf path in edges.
// It relies on pre-order storage: parents are visited before children.
func (t *Tree) Height() int {
	if len(t.nodes) == 0 {
		return 0
	}
	depth := make([]int, len(t.nodes))
	height := 0
	for i := 1; i < len(t.nodes); i++ {
		depth[i] = depth[t.nodes[i].Parent] + 1
		height = max(height, depth[i])
	}
	return height
}

// Walk calls fn for every node in pre-order and stops early if fn returns false.
func (t *Tree) Walk(fn func(id NodeID, n *Node) bool) {
	for i := range t.nodes {
		if !fn(NodeID(i), &t.nodes[i]) {
			return
		}
	}
}

// Edges calls fn for every parent-child pair in pre-order of the child.
func (t *Tree) Edges(fn func(parent, child NodeID)) {
	for i := 1; i < len(t.nodes); i++ {
		fn(t.nodes[i].Parent, NodeID(i))
	}
}

package mindmap

import (
	"errors"
	"fmt"
)

// ErrNotPreOrder is returned by [FromNodes] when a node's parent does not
// precede it, or the first node is not a root.
var ErrNotPreOrder = errors.New("nodes are not in pre-order")

// FromNodes rebuilds a tree from an arena that was previously produced by a
// Builder, for example one restored from a serialized layout. Only ID, Text,
// Parent and the geometry fields are read; Children lists are derived from
// Parent in slice order. Node 0 must be the only root and every parent must
// precede its children.
func FromNodes(nodes []Node, order ChildOrder) (*Tree, error) {
	if len(nodes) == 0 {
		return nil, ErrNoRoot
	}
	if !order.Valid() {
		order = DefaultChildOrder
	}
	t := &Tree{
		nodes: make([]Node, len(nodes)),
		index: make(map[string]NodeID, len(nodes)),
		order: order,
	}
	for i, n := range nodes {
		id := NodeID(i)
		switch {
		case i == 0 && n.Parent != None:
			return nil, fmt.Errorf("%w: node 0 has parent %d", ErrNotPreOrder, n.Parent)
		case i > 0 && (n.Parent < 0 || n.Parent >= id):
			return nil, fmt.Errorf("%w: node %d has parent %d", ErrNotPreOrder, i, n.Parent)
		}
		if n.ID == "" {
			return nil, fmt.Errorf("node %d has an empty ID", i)
		}
		if _, dup := t.index[n.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
		}
		if n.Text == "" {
			n.Text = n.ID
		}
		n.Children = nil
		t.nodes[i] = n
		t.index[n.ID] = id
		if i > 0 {
			t.nodes[n.Parent].Children = append(t.nodes[n.Parent].Children, id)
		}
	}
	return t, nil
}

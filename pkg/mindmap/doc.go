// Package mindmap provides the hierarchical document model that the radial
// layout engine operates on.
//
// # Overview
//
// A mind map is a rooted tree of labelled nodes. The tree is stored as a flat
// arena: every node lives in a single slice and is addressed by its [NodeID]
// (the slice index). Nodes are stored in pre-order, so the root is always
// index 0 and a parent's index is always smaller than its children's.
//
// The arena form keeps traversal iterative. Pathologically deep documents (a
// chain of a hundred thousand nodes) are walked with explicit stacks and never
// grow the goroutine stack.
//
// # Building Trees
//
// Trees are constructed with a [Builder] and are structurally immutable once
// [Builder.Build] returns:
//
//	b := mindmap.NewBuilder(mindmap.ChildOrderDocument)
//	root, _ := b.Root("root", "Ideas")
//	b.Child(root, "", "First")  // ID synthesized as "auto_1"
//	b.Child(root, "b", "")      // text falls back to "b"
//	t, err := b.Build()
//
// The layout package fills in the per-node geometry fields (depth, leaf count,
// sector, angle, radius, position) in place.
//
// # Child Order
//
// [ChildOrder] decides how sibling order relates to document order.
// [ChildOrderDocument] keeps siblings as written. [ChildOrderReversed]
// reproduces viewers that insert each parsed child at the front of its parent's
// list. The choice changes which child receives which angular sector, so it is
// part of every layout cache key.
//
// # Loading Documents
//
// [ReadFreeMind] and [ReadFreeMindFile] load FreeMind ".mm" XML. Nested JSON
// trees are handled by the graph package.
package mindmap

package mindmap

import (
	"fmt"
	"slices"
	"strconv"
)

// Handle refers to a node added to a [Builder]. Handles are not NodeIDs:
// the final arena index is only known after Build.
type Handle int

type draft struct {
	id       string
	text     string
	children []Handle
}

// Builder accumulates nodes in any order and produces a pre-order [Tree].
// The zero value is not usable; use [NewBuilder].
type Builder struct {
	order    ChildOrder
	drafts   []draft
	ids      map[string]bool
	nextAuto int
	hasRoot  bool
}

// NewBuilder returns a builder that orders siblings according to order.
// An invalid order falls back to [DefaultChildOrder].
func NewBuilder(order ChildOrder) *Builder {
	if !order.Valid() {
		order = DefaultChildOrder
	}
	return &Builder{order: order, ids: make(map[string]bool), nextAuto: 1}
}

// Root adds the root node. An empty id is synthesized as "auto_<n>" by
// Build and an empty text falls back to the id.
func (b *Builder) Root(id, text string) (Handle, error) {
	if b.hasRoot {
		return 0, ErrDuplicateRoot
	}
	h, err := b.add(id, text)
	if err != nil {
		return 0, err
	}
	b.hasRoot = true
	return h, nil
}

// Child adds a node under parent. Siblings keep the order of Child calls
// until Build applies the builder's ChildOrder.
func (b *Builder) Child(parent Handle, id, text string) (Handle, error) {
	if !b.hasRoot || parent < 0 || int(parent) >= len(b.drafts) {
		return 0, ErrUnknownParent
	}
	h, err := b.add(id, text)
	if err != nil {
		return 0, err
	}
	b.drafts[parent].children = append(b.drafts[parent].children, h)
	return h, nil
}

// add records a node. Explicit IDs are checked here; empty ones wait for
// Build so that synthesized IDs never collide with an explicit ID added later.
func (b *Builder) add(id, text string) (Handle, error) {
	if id != "" {
		if b.ids[id] {
			return 0, fmt.Errorf("%w: %q", ErrDuplicateNodeID, id)
		}
		b.ids[id] = true
	}
	b.drafts = append(b.drafts, draft{id: id, text: text})
	return Handle(len(b.drafts) - 1), nil
}

// assignIDs synthesizes the missing IDs in the order nodes were added and
// applies the text fallback.
func (b *Builder) assignIDs() {
	for i := range b.drafts {
		d := &b.drafts[i]
		if d.id == "" {
			d.id = b.synthesizeID()
			b.ids[d.id] = true
		}
		if d.text == "" {
			d.text = d.id
		}
	}
}

// synthesizeID returns the next unused "auto_<n>" identifier.
func (b *Builder) synthesizeID() string {
	for {
		id := "auto_" + strconv.Itoa(b.nextAuto)
		b.nextAuto++
		if !b.ids[id] {
			return id
		}
	}
}

// Build flattens the added nodes into a pre-order arena. The root added by
// [Builder.Root] becomes NodeID 0.
func (b *Builder) Build() (*Tree, error) {
	if !b.hasRoot {
		return nil, ErrNoRoot
	}
	b.assignIDs()
	t := &Tree{
		nodes: make([]Node, 0, len(b.drafts)),
		index: make(map[string]NodeID, len(b.drafts)),
		order: b.order,
	}

	type frame struct {
		h      Handle
		parent NodeID
	}
	stack := []frame{{h: 0, parent: None}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		d := b.drafts[f.h]
		id := NodeID(len(t.nodes))
		t.nodes = append(t.nodes, Node{ID: d.id, Text: d.text, Parent: f.parent, LeafCount: 1})
		t.index[d.id] = id
		if f.parent != None {
			t.nodes[f.parent].Children = append(t.nodes[f.parent].Children, id)
		}

		kids := b.ordered(d.children)
		// Push in reverse so the first child is popped (and numbered) first.
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{h: kids[i], parent: id})
		}
	}
	return t, nil
}

func (b *Builder) ordered(children []Handle) []Handle {
	if b.order != ChildOrderReversed || len(children) < 2 {
		return children
	}
	rev := slices.Clone(children)
	slices.Reverse(rev)
	return rev
}

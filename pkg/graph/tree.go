package graph

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/radialmap/pkg/mindmap"
)

// ErrEmptyTree is returned when a JSON tree document has no root.
var ErrEmptyTree = errors.New("empty tree document")

// =============================================================================
// Tree - Nested JSON Mind Map
// =============================================================================

// Tree is the nested JSON form of a mind map.
type Tree struct {
	ID       string `json:"id,omitempty" bson:"id,omitempty"`
	Text     string `json:"text,omitempty" bson:"text,omitempty"`
	Children []Tree `json:"children,omitempty" bson:"children,omitempty"`
}

func (t *Tree) empty() bool {
	return t.ID == "" && t.Text == "" && len(t.Children) == 0
}

// Build converts the nested tree into an arena tree. IDs are synthesized in
// pre-order document order.
func (t *Tree) Build(order mindmap.ChildOrder) (*mindmap.Tree, error) {
	if t == nil || t.empty() {
		return nil, ErrEmptyTree
	}
	b := mindmap.NewBuilder(order)
	root, err := b.Root(t.ID, t.Text)
	if err != nil {
		return nil, err
	}

	type frame struct {
		src    *Tree
		handle mindmap.Handle
	}
	// Children are pushed in reverse so IDs are synthesized in document order.
	var stack []frame
	push := func(src *Tree, h mindmap.Handle) {
		for i := len(src.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{src: &src.Children[i], handle: h})
		}
	}
	push(t, root)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		h, err := b.Child(f.handle, f.src.ID, f.src.Text)
		if err != nil {
			return nil, err
		}
		push(f.src, h)
	}
	return b.Build()
}

// TreeFrom converts an arena tree into its nested JSON form, keeping the
// arena's sibling order.
func TreeFrom(t *mindmap.Tree) Tree {
	if t == nil || t.Len() == 0 {
		return Tree{}
	}
	nested := make([]Tree, t.Len())
	for i, n := range t.Nodes() {
		nested[i] = Tree{ID: n.ID, Text: n.Text}
	}
	// Children have larger indices than parents, so assembling from the back
	// completes every subtree before it is copied into its parent.
	for i := t.Len() - 1; i >= 0; i-- {
		kids := t.Children(mindmap.NodeID(i))
		if len(kids) == 0 {
			continue
		}
		nested[i].Children = make([]Tree, len(kids))
		for j, c := range kids {
			nested[i].Children[j] = nested[c]
		}
	}
	return nested[0]
}

// =============================================================================
// Tree Serialization API
// =============================================================================

// ReadTree decodes a nested JSON mind map from r.
func ReadTree(r io.Reader, order mindmap.ChildOrder) (*mindmap.Tree, error) {
	var doc *Tree
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, ErrEmptyTree
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	return doc.Build(order)
}

// UnmarshalTree decodes a nested JSON mind map from bytes.
func UnmarshalTree(data []byte, order mindmap.ChildOrder) (*mindmap.Tree, error) {
	return ReadTree(bytes.NewReader(data), order)
}

// ReadTreeFile reads a nested JSON mind map from a file.
func ReadTreeFile(path string, order mindmap.ChildOrder) (*mindmap.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadTree(f, order)
}

// WriteTree writes t as indented nested JSON.
func WriteTree(w io.Writer, t *mindmap.Tree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(TreeFrom(t)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

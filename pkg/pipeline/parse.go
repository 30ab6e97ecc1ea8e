package pipeline

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"

	"github.com/matzehuels/radialmap/pkg/errors"
	"github.com/matzehuels/radialmap/pkg/graph"
	"github.com/matzehuels/radialmap/pkg/mindmap"
)

// ReadSource returns opts.Source, or the contents of opts.Filename when no
// source was given.
func ReadSource(opts Options) ([]byte, error) {
	if len(opts.Source) > 0 {
		return opts.Source, nil
	}
	data, err := os.ReadFile(opts.Filename)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document %s not found", opts.Filename)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", opts.Filename)
	}
	return data, nil
}

// Parse decodes src into a tree. Loader failures become INVALID_DOCUMENT
// errors.
func Parse(src []byte, opts Options) (*mindmap.Tree, error) {
	var (
		t   *mindmap.Tree
		err error
	)
	switch opts.Format {
	case InputFreeMind:
		t, err = mindmap.ReadFreeMind(bytes.NewReader(src), opts.Order())
	case InputJSON:
		t, err = graph.UnmarshalTree(src, opts.Order())
	default:
		return nil, ValidateInput(opts.Format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse %s", documentName(opts))
	}
	return t, nil
}

func documentName(opts Options) string {
	if opts.Filename != "" {
		return opts.Filename
	}
	return opts.Format + " document"
}

// cachedTree is the cache encoding of a parsed tree. The arena is stored
// flat so sibling order survives a round trip regardless of child order.
type cachedTree struct {
	ChildOrder string       `json:"child_order"`
	Nodes      []graph.Node `json:"nodes"`
}

func encodeTree(t *mindmap.Tree) ([]byte, error) {
	ct := cachedTree{ChildOrder: t.Order().String(), Nodes: make([]graph.Node, t.Len())}
	for i, n := range t.Nodes() {
		ct.Nodes[i] = graph.Node{ID: n.ID, Text: n.Text, Parent: int(n.Parent)}
	}
	return json.Marshal(ct)
}

func decodeTree(data []byte) (*mindmap.Tree, error) {
	var ct cachedTree
	if err := json.Unmarshal(data, &ct); err != nil {
		return nil, err
	}
	if len(ct.Nodes) == 0 {
		return nil, stderrors.New("cached tree is empty")
	}
	nodes := make([]mindmap.Node, len(ct.Nodes))
	for i, n := range ct.Nodes {
		nodes[i] = mindmap.Node{ID: n.ID, Text: n.Text, Parent: mindmap.NodeID(n.Parent)}
	}
	return mindmap.FromNodes(nodes, mindmap.ChildOrder(ct.ChildOrder))
}

package graph

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/radialmap/pkg/mindmap"
)

func TestReadTree(t *testing.T) {
	doc := `{"text":"Root","children":[
		{"text":"A","children":[{"text":"A1"}]},
		{"id":"b"}
	]}`
	tree, err := ReadTree(strings.NewReader(doc), mindmap.ChildOrderDocument)
	if err != nil {
		t.Fatalf("ReadTree: %v", err)
	}
	var got []string
	for _, n := range tree.Nodes() {
		got = append(got, n.ID+":"+n.Text)
	}
	want := "auto_1:Root auto_2:A auto_3:A1 b:b"
	if strings.Join(got, " ") != want {
		t.Errorf("nodes = %v, want %s", got, want)
	}
}

func TestReadTreeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty input", ``, ErrEmptyTree},
		{"null", `null`, ErrEmptyTree},
		{"empty object", `{}`, ErrEmptyTree},
		{"duplicate", `{"id":"x","children":[{"id":"x"}]}`, mindmap.ErrDuplicateNodeID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTree(strings.NewReader(tt.doc), mindmap.ChildOrderDocument)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
	if _, err := ReadTree(strings.NewReader(`[1,2]`), mindmap.ChildOrderDocument); err == nil {
		t.Error("array document should fail")
	}
}

func TestWriteTree(t *testing.T) {
	doc := `{"id":"r","text":"Root","children":[{"id":"a","text":"A","children":[{"id":"a1","text":"A1"}]},{"id":"b","text":"B"}]}`
	tree, err := UnmarshalTree([]byte(doc), mindmap.ChildOrderDocument)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteTree(&buf, tree); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	again, err := ReadTree(&buf, mindmap.ChildOrderDocument)
	if err != nil {
		t.Fatalf("ReadTree: %v", err)
	}
	if again.Len() != tree.Len() {
		t.Fatalf("Len = %d, want %d", again.Len(), tree.Len())
	}
	for i, n := range tree.Nodes() {
		m := again.Node(mindmap.NodeID(i))
		if m.ID != n.ID || m.Text != n.Text || m.Parent != n.Parent {
			t.Errorf("node %d = %+v, want %+v", i, *m, n)
		}
	}
}

func TestReadTreeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ideas.json")
	if err := os.WriteFile(path, []byte(`{"id":"only"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	tree, err := ReadTreeFile(path, mindmap.ChildOrderReversed)
	if err != nil {
		t.Fatalf("ReadTreeFile: %v", err)
	}
	if tree.Len() != 1 || tree.Node(0).Text != "only" {
		t.Errorf("tree = %+v", tree.Nodes())
	}
	if _, err := ReadTreeFile(filepath.Join(t.TempDir(), "nope.json"), mindmap.ChildOrderDocument); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}

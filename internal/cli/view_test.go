package cli

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/matzehuels/radialmap/pkg/session"
	"github.com/matzehuels/radialmap/pkg/view"
)

func TestSaveViewAfterInterrupt(t *testing.T) {
	store, err := session.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	doc := filepath.Join(t.TempDir(), "ideas.mm")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := view.Default()
	s.Zoom = 2.5
	s.Rotating = true
	New(io.Discard, LogInfo).saveView(ctx, store, doc, s)

	sess, err := store.Get(context.Background(), session.IDFor(doc))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess == nil {
		t.Fatal("view was not saved with a cancelled context")
	}
	if sess.View.Zoom != 2.5 || !sess.View.Rotating {
		t.Errorf("saved view = %+v", sess.View)
	}
}

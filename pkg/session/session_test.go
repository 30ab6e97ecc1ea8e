package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/radialmap/pkg/view"
)

func TestIDFor(t *testing.T) {
	if IDFor("maps/a.mm") != IDFor("maps/a.mm") {
		t.Error("IDFor should be deterministic")
	}
	if IDFor("maps/a.mm") == IDFor("maps/b.mm") {
		t.Error("different documents should get different IDs")
	}
	if len(IDFor("x")) != 32 {
		t.Errorf("IDFor length = %d, want 32", len(IDFor("x")))
	}
	abs, _ := filepath.Abs("rel.mm")
	if IDFor("rel.mm") != IDFor(abs) {
		t.Error("relative and absolute paths should share a session")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}

	s := view.Default()
	s.ZoomIn()
	s.RotationDeg = 42
	s.LeavesOnly = true
	sess := New("map.mm", s, time.Hour)

	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got == nil {
		t.Fatal("Get() returned nil session")
	}
	if got.View.RotationDeg != 42 || !got.View.LeavesOnly || got.View.Zoom != s.Zoom {
		t.Errorf("View = %+v, want %+v", got.View, s)
	}

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if got, _ := store.Get(ctx, sess.ID); got != nil {
		t.Error("Get() after Delete should return nil")
	}
}

func TestFileStoreExpired(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	old := New("old.mm", view.Default(), -time.Minute)
	fresh := New("fresh.mm", view.Default(), time.Hour)
	for _, sess := range []*Session{old, fresh} {
		if err := store.Set(ctx, sess); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, old.ID+".json")); !os.IsNotExist(err) {
		t.Error("expired session file should be removed")
	}
	if got, _ := store.Get(ctx, fresh.ID); got == nil {
		t.Error("fresh session should survive Cleanup")
	}
}

func TestFileStoreInvalidID(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"", "../escape", "a/b"} {
		if _, err := store.Get(context.Background(), id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("Get(%q) error = %v, want ErrInvalidID", id, err)
		}
	}
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	dir, err := DefaultDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/state/radialmap/sessions" {
		t.Errorf("DefaultDir() = %s", dir)
	}
}

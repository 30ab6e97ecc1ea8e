package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/radialmap/pkg/layout"
	"github.com/matzehuels/radialmap/pkg/layout/link"
	"github.com/matzehuels/radialmap/pkg/mindmap"
	"github.com/matzehuels/radialmap/pkg/render/term"
	"github.com/matzehuels/radialmap/pkg/view"
)

func newTestViewer(t *testing.T, s view.State, restored bool) MapViewModel {
	t.Helper()
	tree, err := mindmap.ReadFreeMind(strings.NewReader(testDoc), mindmap.DefaultChildOrder)
	if err != nil {
		t.Fatalf("ReadFreeMind: %v", err)
	}
	if err := layout.Compute(tree, layout.Config{RadiusStep: layout.DefaultRadiusStep}); err != nil {
		t.Fatalf("Compute: %v", err)
	}
	opts := link.Options{Curved: true, Samples: 8, TangentStrength: 0.55, RadiusStep: layout.DefaultRadiusStep}
	return NewMapViewModel("ideas.mm", tree, opts, s, restored)
}

func update(t *testing.T, m MapViewModel, msg tea.Msg) (MapViewModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	vm, ok := next.(MapViewModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return vm, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapViewFitsOnFirstSize(t *testing.T) {
	m := newTestViewer(t, view.Default(), false)
	if got := m.View(); !strings.Contains(got, "Loading") {
		t.Errorf("View before sizing = %q, want loading message", got)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.State.Width != 80 || m.State.Height != 23*term.CellAspect {
		t.Errorf("viewport = %dx%d, want 80x%d", m.State.Width, m.State.Height, 23*term.CellAspect)
	}
	if m.State.Zoom == 1 {
		t.Error("zoom unchanged, want fitted zoom")
	}

	out := m.View()
	lines := strings.Split(out, "\n")
	if len(lines) != 24 {
		t.Errorf("View has %d lines, want 24", len(lines))
	}
	if !strings.Contains(out, "Alpha") {
		t.Errorf("View missing leaf label:\n%s", out)
	}
	if !strings.Contains(lines[len(lines)-1], "4 nodes") {
		t.Errorf("status bar = %q, want node count", lines[len(lines)-1])
	}
}

func TestMapViewKeepsRestoredCamera(t *testing.T) {
	s := view.Default()
	s.Zoom = 3
	s.PanX = 12
	m := newTestViewer(t, s, true)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.State.Zoom != 3 || m.State.PanX != 12 {
		t.Errorf("camera = zoom %v pan %v, want restored 3 and 12", m.State.Zoom, m.State.PanX)
	}

	// Refit on request.
	m, _ = update(t, m, key("0"))
	if m.State.Zoom == 3 || m.State.PanX != 0 {
		t.Errorf("after refit zoom %v pan %v", m.State.Zoom, m.State.PanX)
	}
}

func TestMapViewKeys(t *testing.T) {
	m := newTestViewer(t, view.Default(), false)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	zoom := m.State.Zoom
	m, _ = update(t, m, key("+"))
	if m.State.Zoom <= zoom {
		t.Errorf("zoom after + = %v, want > %v", m.State.Zoom, zoom)
	}

	m, _ = update(t, m, key("left"))
	if m.State.PanX >= 0 {
		t.Errorf("PanX after left = %v, want < 0", m.State.PanX)
	}

	m, _ = update(t, m, key("c"))
	if m.State.CurvedLinks {
		t.Error("c did not toggle curved links")
	}

	m, _ = update(t, m, key("f"))
	if !m.State.Fullscreen {
		t.Fatal("f did not enter fullscreen")
	}
	if m.State.Height != 24*term.CellAspect {
		t.Errorf("fullscreen height = %d, want %d", m.State.Height, 24*term.CellAspect)
	}
	if got := strings.Count(m.View(), "\n") + 1; got != 24 {
		t.Errorf("fullscreen View has %d lines, want 24", got)
	}

	m, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q command = %T, want tea.QuitMsg", cmd())
	}
	if m.View() != "" {
		t.Error("View after quit should be empty")
	}
}

func TestMapViewRotationTicks(t *testing.T) {
	m := newTestViewer(t, view.Default(), false)
	m, _ = update(t, m, key("r"))

	start := time.Now()
	m, cmd := update(t, m, tickMsg(start))
	if cmd == nil {
		t.Error("tick did not schedule the next frame")
	}
	m, _ = update(t, m, tickMsg(start.Add(time.Second)))
	if m.State.RotationDeg != view.DefaultRotationSpeed {
		t.Errorf("RotationDeg = %v, want %v", m.State.RotationDeg, view.DefaultRotationSpeed)
	}
}

func TestMapViewMouse(t *testing.T) {
	m := newTestViewer(t, view.Default(), false)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	zoom := m.State.Zoom
	m, _ = update(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.State.Zoom >= zoom {
		t.Errorf("zoom after wheel down = %v, want < %v", m.State.Zoom, zoom)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m, _ = update(t, m, tea.MouseMsg{X: 20, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	if m.State.PanX >= 0 {
		t.Errorf("PanX after dragging right = %v, want < 0", m.State.PanX)
	}
	m, _ = update(t, m, tea.MouseMsg{X: 20, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if m.State.Dragging() {
		t.Error("drag still active after release")
	}
}

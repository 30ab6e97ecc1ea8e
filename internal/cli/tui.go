package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/radialmap/pkg/layout"
	"github.com/matzehuels/radialmap/pkg/layout/link"
	"github.com/matzehuels/radialmap/pkg/mindmap"
	"github.com/matzehuels/radialmap/pkg/render/term"
	"github.com/matzehuels/radialmap/pkg/view"
)

// Viewer timing and navigation.
const (
	frameInterval = 50 * time.Millisecond
	panStepCells  = 4
	fitMargin     = 40.0
)

// Status bar styles
var (
	statusBarStyle   = lipgloss.NewStyle().Foreground(colorWhite).Background(lipgloss.Color("236"))
	statusTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Background(lipgloss.Color("236"))
	statusOnStyle    = lipgloss.NewStyle().Foreground(colorGreen).Background(lipgloss.Color("236"))
	statusOffStyle   = lipgloss.NewStyle().Foreground(colorDim).Background(lipgloss.Color("236"))
)

// =============================================================================
// MapViewModel - Interactive radial map viewer
// =============================================================================

type tickMsg time.Time

// MapViewModel is the bubbletea model for exploring a laid-out map.
// The layout is computed once; key, mouse and tick messages only move the
// camera.
type MapViewModel struct {
	Title string
	Tree  *mindmap.Tree
	Links link.Options
	State view.State

	canvas   *term.Canvas
	cols     int
	rows     int
	fitted   bool
	lastTick time.Time
	quitting bool
}

// NewMapViewModel creates a viewer for a laid-out tree. When restored is
// false the camera is fitted to the map on the first window size message.
func NewMapViewModel(title string, t *mindmap.Tree, links link.Options, s view.State, restored bool) MapViewModel {
	return MapViewModel{
		Title:  title,
		Tree:   t,
		Links:  links,
		State:  s,
		fitted: restored,
	}
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m MapViewModel) Init() tea.Cmd {
	return tick()
}

func (m MapViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.resize()

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "left":
			m.State.PanPixels(panStepCells, 0)
		case "right":
			m.State.PanPixels(-panStepCells, 0)
		case "up":
			m.State.PanPixels(0, panStepCells*term.CellAspect)
		case "down":
			m.State.PanPixels(0, -panStepCells*term.CellAspect)
		case "0", "home":
			m.fitted = false
			m.resize()
		default:
			fullscreen := m.State.Fullscreen
			_, quit := m.State.HandleKey(key)
			if quit {
				m.quitting = true
				return m, tea.Quit
			}
			if m.State.Fullscreen != fullscreen {
				m.resize()
			}
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			m.State.Advance(now.Sub(m.lastTick))
		}
		m.lastTick = now
		return m, tick()
	}
	return m, nil
}

func (m *MapViewModel) handleMouse(msg tea.MouseMsg) {
	y := msg.Y * term.CellAspect
	switch {
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		m.State.Wheel(true)
	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		m.State.Wheel(false)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.State.BeginDrag(msg.X, y)
	case msg.Action == tea.MouseActionMotion:
		m.State.DragTo(msg.X, y)
	case msg.Action == tea.MouseActionRelease:
		m.State.EndDrag()
	}
}

// canvasRows is the number of rows left for the map.
func (m *MapViewModel) canvasRows() int {
	if m.State.Fullscreen {
		return max(1, m.rows)
	}
	return max(1, m.rows-1)
}

// resize sizes the canvas and camera to the terminal, fitting the map on
// first use.
func (m *MapViewModel) resize() {
	if m.cols <= 0 || m.rows <= 0 {
		return
	}
	rows := m.canvasRows()
	m.canvas = term.NewCanvas(m.cols, rows)
	if !m.fitted {
		fit := view.Fit(layout.Extent(m.Tree), fitMargin, m.cols, rows*term.CellAspect)
		m.State.Zoom = fit.Zoom
		m.State.PanX, m.State.PanY = 0, 0
		m.fitted = true
	}
	term.Viewport(&m.State, m.cols, rows)
}

func (m MapViewModel) View() string {
	if m.quitting {
		return ""
	}
	if m.canvas == nil {
		return StyleDim.Render("Loading " + m.Title + "...")
	}
	term.Draw(m.canvas, m.Tree, m.State, m.Links)
	if m.State.Fullscreen {
		return m.canvas.String()
	}
	return m.canvas.String() + "\n" + m.statusBar()
}

func (m MapViewModel) statusBar() string {
	toggle := func(name string, on bool) string {
		if on {
			return statusOnStyle.Render(name)
		}
		return statusOffStyle.Render(name)
	}
	parts := []string{
		statusTitleStyle.Render(" " + m.Title),
		statusBarStyle.Render(fmt.Sprintf("%d nodes", m.Tree.Len())),
		statusBarStyle.Render(fmt.Sprintf("zoom %.2fx", m.State.Zoom)),
		statusBarStyle.Render(fmt.Sprintf("rot %3.0f°", m.State.RotationDeg)),
		toggle("[r]otate", m.State.Rotating),
		toggle("[c]urved", m.State.CurvedLinks),
		toggle("[l]eaves", m.State.LeavesOnly),
		toggle("[t]ext", m.State.ConstantScreenLabels),
		statusOffStyle.Render("[q]uit"),
	}
	sep := statusBarStyle.Render("  ")
	return statusBarStyle.Width(m.cols).MaxHeight(1).Render(strings.Join(parts, sep))
}

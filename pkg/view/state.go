package view

import (
	"math"
	"time"
)

// Camera limits and defaults.
const (
	MinZoom        = 0.1
	MaxZoom        = 20.0
	ZoomInFactor   = 1.1
	ZoomOutFactor  = 0.9
	BaseHalfHeight = 400.0

	DefaultRotationSpeed = 15.0 // degrees per second
	RotationSpeedStep    = 5.0
	MaxRotationSpeed     = 360.0

	DefaultWidth  = 1000
	DefaultHeight = 900

	// LabelStrokeScale is the world-space text scale at zoom 1.
	LabelStrokeScale = 0.020
)

// State is the camera plus display toggles for one view of a map.
// The zero value is not usable; start from [Default].
type State struct {
	Zoom          float64 `json:"zoom"`
	PanX          float64 `json:"pan_x"`
	PanY          float64 `json:"pan_y"`
	RotationDeg   float64 `json:"rotation_deg"`
	RotationSpeed float64 `json:"rotation_speed"`
	Rotating      bool    `json:"rotating"`

	CurvedLinks          bool `json:"curved_links"`
	LeavesOnly           bool `json:"leaves_only"`
	ConstantScreenLabels bool `json:"constant_screen_labels"`
	Fullscreen           bool `json:"fullscreen"`

	Width  int `json:"width"`
	Height int `json:"height"`

	dragging     bool
	lastX, lastY int
}

// Default returns the initial view: no zoom, pan or rotation, curved links,
// every label shown.
func Default() State {
	return State{
		Zoom:          1,
		RotationSpeed: DefaultRotationSpeed,
		CurvedLinks:   true,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
	}
}

// Normalize clamps every field into its valid range. It is applied to states
// restored from storage.
func (s *State) Normalize() {
	if s.Zoom == 0 || math.IsNaN(s.Zoom) {
		s.Zoom = 1
	}
	s.Zoom = clamp(s.Zoom, MinZoom, MaxZoom)
	s.RotationSpeed = clamp(s.RotationSpeed, 0, MaxRotationSpeed)
	s.RotationDeg = wrapDegrees(s.RotationDeg)
	s.Resize(s.Width, s.Height)
}

// ZoomIn multiplies the zoom by ZoomInFactor, up to MaxZoom.
func (s *State) ZoomIn() { s.Zoom = min(MaxZoom, s.Zoom*ZoomInFactor) }

// ZoomOut multiplies the zoom by ZoomOutFactor, down to MinZoom.
func (s *State) ZoomOut() { s.Zoom = max(MinZoom, s.Zoom*ZoomOutFactor) }

// Resize sets the viewport size in pixels. Sizes below 1 become 1.
func (s *State) Resize(w, h int) {
	s.Width = max(1, w)
	s.Height = max(1, h)
}

// WorldPerPixel is the world distance covered by one viewport pixel.
func (s *State) WorldPerPixel() float64 {
	return 2 * (BaseHalfHeight / s.Zoom) / float64(max(1, s.Height))
}

// PanPixels moves the camera as if the map were dragged by (dx, dy) pixels,
// with dy measured downward.
func (s *State) PanPixels(dx, dy int) {
	wpp := s.WorldPerPixel()
	s.PanX -= float64(dx) * wpp
	s.PanY += float64(dy) * wpp
}

// BeginDrag starts a pan gesture at pixel (x, y).
func (s *State) BeginDrag(x, y int) {
	s.dragging = true
	s.lastX, s.lastY = x, y
}

// DragTo pans by the motion since the previous drag position. It is a no-op
// outside a drag.
func (s *State) DragTo(x, y int) bool {
	if !s.dragging {
		return false
	}
	s.PanPixels(x-s.lastX, y-s.lastY)
	s.lastX, s.lastY = x, y
	return true
}

// EndDrag finishes a pan gesture.
func (s *State) EndDrag() { s.dragging = false }

// Dragging reports whether a pan gesture is in progress.
func (s *State) Dragging() bool { return s.dragging }

// Advance moves the rotation animation forward by dt when rotating.
// The angle stays in [0, 360).
func (s *State) Advance(dt time.Duration) {
	if !s.Rotating {
		return
	}
	s.RotationDeg = wrapDegrees(s.RotationDeg + s.RotationSpeed*dt.Seconds())
}

// SpeedUp raises the rotation speed by RotationSpeedStep.
func (s *State) SpeedUp() {
	s.RotationSpeed = min(MaxRotationSpeed, s.RotationSpeed+RotationSpeedStep)
}

// SlowDown lowers the rotation speed by RotationSpeedStep.
func (s *State) SlowDown() {
	s.RotationSpeed = max(0, s.RotationSpeed-RotationSpeedStep)
}

// ToggleRotation starts or stops the automatic spin.
func (s *State) ToggleRotation() { s.Rotating = !s.Rotating }

// ToggleCurvedLinks switches links between Bézier curves and straight segments.
func (s *State) ToggleCurvedLinks() { s.CurvedLinks = !s.CurvedLinks }

// ToggleLeavesOnly limits labels to leaf nodes, or shows them on every node.
func (s *State) ToggleLeavesOnly() { s.LeavesOnly = !s.LeavesOnly }

// ToggleConstantLabels switches between labels that keep their on-screen size
// and labels that scale with the zoom.
func (s *State) ToggleConstantLabels() { s.ConstantScreenLabels = !s.ConstantScreenLabels }

// ToggleFullscreen hides or shows the status bar.
func (s *State) ToggleFullscreen() { s.Fullscreen = !s.Fullscreen }

// LabelScale returns the world-space text scale. With constant-screen labels
// the scale shrinks as the zoom grows, so text keeps its on-screen size.
func (s *State) LabelScale(base float64) float64 {
	if s.ConstantScreenLabels {
		return base / s.Zoom
	}
	return base
}

// HalfExtents returns the half-width and half-height of the visible world
// window.
func (s *State) HalfExtents() (halfW, halfH float64) {
	halfH = BaseHalfHeight / s.Zoom
	aspect := float64(max(1, s.Width)) / float64(max(1, s.Height))
	return halfH * aspect, halfH
}

// Eye transforms a world point into the camera frame: rotation about the
// origin followed by the pan offset.
func (s *State) Eye(x, y float64) (float64, float64) {
	sin, cos := math.Sincos(s.RotationDeg * math.Pi / 180)
	rx := x*cos - y*sin
	ry := x*sin + y*cos
	return rx - s.PanX, ry - s.PanY
}

// WorldToScreen maps a world point to viewport pixels (origin top-left).
func (s *State) WorldToScreen(x, y float64) (sx, sy float64) {
	ex, ey := s.Eye(x, y)
	halfW, halfH := s.HalfExtents()
	sx = (ex/halfW + 1) / 2 * float64(max(1, s.Width))
	sy = (1 - ey/halfH) / 2 * float64(max(1, s.Height))
	return sx, sy
}

// ScreenToWorld is the inverse of WorldToScreen.
func (s *State) ScreenToWorld(sx, sy float64) (x, y float64) {
	halfW, halfH := s.HalfExtents()
	ex := (2*sx/float64(max(1, s.Width)) - 1) * halfW
	ey := (1 - 2*sy/float64(max(1, s.Height))) * halfH
	ex += s.PanX
	ey += s.PanY
	sin, cos := math.Sincos(-s.RotationDeg * math.Pi / 180)
	return ex*cos - ey*sin, ex*sin + ey*cos
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}

// Fit returns the default view sized to w×h pixels and zoomed so that a
// drawing of the given world radius, plus margin, fills the shorter side.
// The zoom is not clamped, so very large or very small maps still fit.
func Fit(extent, margin float64, w, h int) State {
	s := Default()
	s.Resize(w, h)
	half := max(extent+margin, 1)
	if s.Height > s.Width {
		half *= float64(s.Height) / float64(s.Width)
	}
	s.Zoom = BaseHalfHeight / half
	return s
}

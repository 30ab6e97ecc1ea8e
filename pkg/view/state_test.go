package view

import (
	"math"
	"testing"
	"time"
)

const eps = 1e-9

func TestZoomClamp(t *testing.T) {
	s := Default()
	for range 200 {
		s.ZoomIn()
	}
	if s.Zoom != MaxZoom {
		t.Errorf("Zoom after many ZoomIn = %v, want %v", s.Zoom, MaxZoom)
	}
	for range 400 {
		s.ZoomOut()
	}
	if s.Zoom != MinZoom {
		t.Errorf("Zoom after many ZoomOut = %v, want %v", s.Zoom, MinZoom)
	}

	s = Default()
	s.ZoomIn()
	if math.Abs(s.Zoom-1.1) > eps {
		t.Errorf("Zoom = %v, want 1.1", s.Zoom)
	}
}

func TestPanPixels(t *testing.T) {
	s := Default()
	s.Resize(1000, 800)
	// 800 world units over 800 pixels at zoom 1.
	if got := s.WorldPerPixel(); got != 1 {
		t.Fatalf("WorldPerPixel = %v, want 1", got)
	}
	s.PanPixels(10, 20)
	if s.PanX != -10 || s.PanY != 20 {
		t.Errorf("pan = (%v, %v), want (-10, 20)", s.PanX, s.PanY)
	}

	s.Zoom = 2
	s.PanPixels(-10, 0)
	if s.PanX != -5 {
		t.Errorf("PanX = %v, want -5 at zoom 2", s.PanX)
	}
}

func TestDrag(t *testing.T) {
	s := Default()
	s.Resize(100, 800)
	if s.DragTo(5, 5) {
		t.Error("DragTo without BeginDrag should be ignored")
	}
	s.BeginDrag(50, 50)
	s.DragTo(60, 50)
	s.DragTo(70, 40)
	s.EndDrag()
	if s.PanX != -20 || s.PanY != -10 {
		t.Errorf("pan = (%v, %v), want (-20, -10)", s.PanX, s.PanY)
	}
	if s.Dragging() {
		t.Error("still dragging after EndDrag")
	}
}

func TestAdvanceWraps(t *testing.T) {
	s := Default()
	s.Advance(time.Second)
	if s.RotationDeg != 0 {
		t.Errorf("Advance while paused moved rotation to %v", s.RotationDeg)
	}

	s.ToggleRotation()
	s.RotationDeg = 350
	s.Advance(time.Second)
	if math.Abs(s.RotationDeg-5) > eps {
		t.Errorf("RotationDeg = %v, want 5", s.RotationDeg)
	}

	s.RotationSpeed = 360
	s.Advance(10 * time.Second)
	if s.RotationDeg < 0 || s.RotationDeg >= 360 {
		t.Errorf("RotationDeg = %v outside [0, 360)", s.RotationDeg)
	}
}

func TestRotationSpeedClamp(t *testing.T) {
	s := Default()
	s.SlowDown()
	s.SlowDown()
	s.SlowDown()
	s.SlowDown()
	if s.RotationSpeed != 0 {
		t.Errorf("RotationSpeed = %v, want 0", s.RotationSpeed)
	}
	for range 100 {
		s.SpeedUp()
	}
	if s.RotationSpeed != MaxRotationSpeed {
		t.Errorf("RotationSpeed = %v, want %v", s.RotationSpeed, MaxRotationSpeed)
	}
}

func TestWorldToScreen(t *testing.T) {
	s := Default()
	s.Resize(800, 800)

	sx, sy := s.WorldToScreen(0, 0)
	if sx != 400 || sy != 400 {
		t.Errorf("origin maps to (%v, %v), want centre", sx, sy)
	}
	// y up in world, down on screen.
	_, sy = s.WorldToScreen(0, 100)
	if sy != 300 {
		t.Errorf("world y=100 maps to sy=%v, want 300", sy)
	}

	s.RotationDeg = 90
	sx, sy = s.WorldToScreen(100, 0)
	if math.Abs(sx-400) > eps || math.Abs(sy-300) > eps {
		t.Errorf("rotated point at (%v, %v), want (400, 300)", sx, sy)
	}

	s.PanX, s.PanY, s.Zoom = 30, -20, 2
	x, y := s.ScreenToWorld(s.WorldToScreen(12, 34))
	if math.Abs(x-12) > 1e-6 || math.Abs(y-34) > 1e-6 {
		t.Errorf("round trip = (%v, %v), want (12, 34)", x, y)
	}
}

func TestLabelScale(t *testing.T) {
	s := Default()
	s.Zoom = 4
	if got := s.LabelScale(LabelStrokeScale); got != LabelStrokeScale {
		t.Errorf("LabelScale = %v, want %v", got, LabelStrokeScale)
	}
	s.ToggleConstantLabels()
	if got := s.LabelScale(LabelStrokeScale); got != LabelStrokeScale/4 {
		t.Errorf("LabelScale = %v, want %v", got, LabelStrokeScale/4)
	}
}

func TestHandleKey(t *testing.T) {
	s := Default()
	tests := []struct {
		key    string
		redraw bool
		quit   bool
		check  func(State) bool
	}{
		{"+", true, false, func(s State) bool { return s.Zoom > 1 }},
		{"_", true, false, func(s State) bool { return s.Zoom < 1.1 }},
		{"L", true, false, func(s State) bool { return s.LeavesOnly }},
		{"c", true, false, func(s State) bool { return !s.CurvedLinks }},
		{"r", true, false, func(s State) bool { return s.Rotating }},
		{"]", true, false, func(s State) bool { return s.RotationSpeed == 20 }},
		{"t", true, false, func(s State) bool { return s.ConstantScreenLabels }},
		{"f", true, false, func(s State) bool { return s.Fullscreen }},
		{"x", false, false, nil},
		{"esc", false, true, nil},
	}
	for _, tt := range tests {
		redraw, quit := s.HandleKey(tt.key)
		if redraw != tt.redraw || quit != tt.quit {
			t.Errorf("HandleKey(%q) = %v, %v; want %v, %v", tt.key, redraw, quit, tt.redraw, tt.quit)
		}
		if tt.check != nil && !tt.check(s) {
			t.Errorf("HandleKey(%q) left state %+v", tt.key, s)
		}
	}
}

func TestNormalize(t *testing.T) {
	s := State{Zoom: 500, RotationSpeed: -3, RotationDeg: -90}
	s.Normalize()
	if s.Zoom != MaxZoom || s.RotationSpeed != 0 || s.RotationDeg != 270 || s.Width != 1 {
		t.Errorf("Normalize = %+v", s)
	}
}

func TestFit(t *testing.T) {
	s := Fit(90, 10, 400, 200)
	halfW, halfH := s.HalfExtents()
	if math.Abs(halfH-100) > eps || math.Abs(halfW-200) > eps {
		t.Errorf("landscape fit half extents = (%v, %v), want (200, 100)", halfW, halfH)
	}

	s = Fit(90, 10, 200, 400)
	halfW, halfH = s.HalfExtents()
	if math.Abs(halfW-100) > eps || math.Abs(halfH-200) > eps {
		t.Errorf("portrait fit half extents = (%v, %v), want (100, 200)", halfW, halfH)
	}

	if s := Fit(0, 0, 10, 10); math.IsInf(s.Zoom, 0) {
		t.Error("Fit of an empty drawing produced infinite zoom")
	}
}

func TestTogglesFlipOneField(t *testing.T) {
	tests := []struct {
		name   string
		toggle func(*State)
		field  func(State) bool
	}{
		{"rotation", (*State).ToggleRotation, func(s State) bool { return s.Rotating }},
		{"curved", (*State).ToggleCurvedLinks, func(s State) bool { return s.CurvedLinks }},
		{"leaves", (*State).ToggleLeavesOnly, func(s State) bool { return s.LeavesOnly }},
		{"labels", (*State).ToggleConstantLabels, func(s State) bool { return s.ConstantScreenLabels }},
		{"fullscreen", (*State).ToggleFullscreen, func(s State) bool { return s.Fullscreen }},
	}
	for _, tt := range tests {
		s := Default()
		before := s
		tt.toggle(&s)
		if tt.field(s) == tt.field(before) {
			t.Errorf("%s: toggle did not change the field", tt.name)
		}
		tt.toggle(&s)
		if s != before {
			t.Errorf("%s: toggling twice = %+v, want %+v", tt.name, s, before)
		}
	}
}

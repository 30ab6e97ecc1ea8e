package view

// HandleKey applies a viewer key binding. Keys use bubbletea's names
// ("esc", "ctrl+c", single characters otherwise).
//
//	+ =     zoom in            - _   zoom out
//	l       leaves-only labels c     curved links
//	f       fullscreen         r     rotation animation
//	[ ]     rotation speed     t     constant-size labels
//	esc q   quit
//
// Letter bindings are case-insensitive. It reports whether the view changed
// and whether the viewer should exit.
func (s *State) HandleKey(key string) (redraw, quit bool) {
	switch key {
	case "esc", "q", "Q", "ctrl+c":
		return false, true
	case "+", "=":
		s.ZoomIn()
	case "-", "_":
		s.ZoomOut()
	case "l", "L":
		s.ToggleLeavesOnly()
	case "c", "C":
		s.ToggleCurvedLinks()
	case "f", "F":
		s.ToggleFullscreen()
	case "r", "R":
		s.ToggleRotation()
	case "[":
		s.SlowDown()
	case "]":
		s.SpeedUp()
	case "t", "T":
		s.ToggleConstantLabels()
	default:
		return false, false
	}
	return true, false
}

// Wheel zooms in for an upward scroll and out otherwise.
func (s *State) Wheel(up bool) {
	if up {
		s.ZoomIn()
	} else {
		s.ZoomOut()
	}
}

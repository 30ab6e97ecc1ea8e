package sink

import (
	"github.com/matzehuels/radialmap/pkg/render/styles"
	"github.com/matzehuels/radialmap/pkg/view"
)

// Default output size in pixels.
const (
	DefaultWidth  = 1200
	DefaultHeight = 1200
)

// Option configures a sink.
type Option func(*renderer)

type renderer struct {
	style      styles.Style
	state      *view.State
	leavesOnly bool
	width      int
	height     int
	sized      bool
}

// WithStyle sets the visual style (default styles.Simple).
func WithStyle(s styles.Style) Option { return func(r *renderer) { r.style = s } }

// WithView renders through the given camera instead of fitting the map.
func WithView(s view.State) Option { return func(r *renderer) { r.state = &s } }

// WithLeavesOnly hides labels of internal nodes other than the root.
func WithLeavesOnly() Option { return func(r *renderer) { r.leavesOnly = true } }

// WithSize sets the output size in pixels. Non-positive values keep the
// default, or the size of the camera given to WithView.
func WithSize(w, h int) Option {
	return func(r *renderer) {
		if w > 0 {
			r.width = w
			r.sized = true
		}
		if h > 0 {
			r.height = h
			r.sized = true
		}
	}
}

func newRenderer(opts ...Option) renderer {
	r := renderer{style: styles.Simple{}, width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		r.style = styles.Simple{}
	}
	if r.state != nil && !r.sized && r.state.Width > 0 && r.state.Height > 0 {
		r.width, r.height = r.state.Width, r.state.Height
	}
	return r
}

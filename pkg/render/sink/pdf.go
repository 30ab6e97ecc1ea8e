package sink

import (
	"context"

	"github.com/matzehuels/radialmap/pkg/graph"
	"github.com/matzehuels/radialmap/pkg/render"
)

// RenderPDF renders the layout as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, l graph.Layout, opts ...Option) ([]byte, error) {
	svg, err := RenderSVG(l, opts...)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

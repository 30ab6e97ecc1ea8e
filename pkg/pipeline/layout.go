package pipeline

import (
	"github.com/matzehuels/radialmap/pkg/errors"
	"github.com/matzehuels/radialmap/pkg/graph"
	"github.com/matzehuels/radialmap/pkg/layout"
	"github.com/matzehuels/radialmap/pkg/mindmap"
	"github.com/matzehuels/radialmap/pkg/render/nodelink"
)

// GenerateLayout computes the layout for either viz type. Radial layouts
// carry every node's geometry and the link polylines; twopi layouts carry
// the DOT source handed to Graphviz at render time.
func GenerateLayout(t *mindmap.Tree, opts Options) (graph.Layout, error) {
	if opts.IsTwopi() {
		return generateTwopiLayout(t, opts), nil
	}
	return generateRadialLayout(t, opts)
}

func generateRadialLayout(t *mindmap.Tree, opts Options) (graph.Layout, error) {
	cfg := opts.LayoutConfig()
	if err := layout.Compute(t, cfg); err != nil {
		return graph.Layout{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "layout")
	}
	l := graph.FromTree(t, cfg, opts.LinkOptions())
	l.Width = float64(opts.Width)
	l.Height = float64(opts.Height)
	l.Style = opts.Style
	l.Seed = opts.Seed
	return l, nil
}

func generateTwopiLayout(t *mindmap.Tree, opts Options) graph.Layout {
	return graph.Layout{
		VizType:    graph.VizTypeTwopi,
		Width:      float64(opts.Width),
		Height:     float64(opts.Height),
		Style:      opts.Style,
		RadiusStep: opts.RadiusStep,
		ChildOrder: t.Order().String(),
		DOT:        nodelink.ToDOT(t, nodelink.Options{RadiusStep: opts.RadiusStep}),
		Engine:     "twopi",
	}
}

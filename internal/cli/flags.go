package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/radialmap/pkg/pipeline"
)

// layoutFlags binds the layout options shared by layout, render and view.
type layoutFlags struct {
	curved  bool
	tangent float64
}

func (f *layoutFlags) register(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().StringVarP(&opts.VizType, "type", "t", "", "visualization type: radial (default), twopi")
	cmd.Flags().Float64Var(&opts.RadiusStep, "radius-step", 0, fmt.Sprintf("distance between rings in world units (default %g)", pipeline.DefaultRadiusStep))
	cmd.Flags().StringVar(&opts.ChildOrder, "child-order", "", "sibling order: document (default), reversed")
	cmd.Flags().BoolVar(&f.curved, "curved", true, "draw curved links")
	cmd.Flags().IntVar(&opts.Samples, "samples", 0, fmt.Sprintf("points sampled per curved link (default %d)", pipeline.DefaultSamples))
	cmd.Flags().Float64Var(&f.tangent, "tangent", pipeline.DefaultTangentStrength, "curve tangent strength, 0 puts control points on the nodes")
}

// apply copies flag values that need change detection into opts.
func (f *layoutFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	if cmd.Flags().Changed("curved") {
		opts.Curved = pipeline.Bool(f.curved)
	}
	if cmd.Flags().Changed("tangent") {
		opts.TangentStrength = pipeline.Float(f.tangent)
	}
}

// registerRenderFlags binds the render options shared by render and visualize.
func registerRenderFlags(cmd *cobra.Command, opts *pipeline.Options, formats *string) {
	cmd.Flags().StringVarP(formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: simple (default), handdrawn")
	cmd.Flags().IntVar(&opts.Width, "width", 0, fmt.Sprintf("raster width in pixels (default %d)", pipeline.DefaultWidth))
	cmd.Flags().IntVar(&opts.Height, "height", 0, fmt.Sprintf("raster height in pixels (default %d)", pipeline.DefaultHeight))
	cmd.Flags().BoolVar(&opts.LeavesOnly, "leaves-only", false, "label leaves only")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, fmt.Sprintf("random seed for the handdrawn style (default %d)", pipeline.DefaultSeed))
}

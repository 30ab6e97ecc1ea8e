// Package nodelink renders mind maps with Graphviz's twopi engine.
//
// # Overview
//
// twopi is Graphviz's own radial layout: the root sits at the centre and each
// tree level occupies a concentric ring. Rendering the same map with twopi
// and with the radial engine in [github.com/matzehuels/radialmap/pkg/layout]
// makes the two layouts easy to compare. Layouts of viz type "twopi" store
// the DOT source produced here.
//
// # Usage
//
//	dot := nodelink.ToDOT(tree, nodelink.Options{RadiusStep: 35})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink

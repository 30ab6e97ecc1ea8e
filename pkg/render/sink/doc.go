// Package sink renders radial layouts to output formats.
//
// # Overview
//
// Every sink consumes a [graph.Layout] of viz type "radial" and never modifies
// it. The supported formats are:
//
//   - [RenderSVG]: vector output in world coordinates
//   - [RenderPNG]: native raster output (no external tools)
//   - [RenderPDF]: SVG converted with rsvg-convert
//   - [RenderJSON]: the layout itself, pretty-printed
//
// # Options
//
// All sinks share one [Option] type:
//
//	svg, err := sink.RenderSVG(l,
//	    sink.WithStyle(styles.NewHanddrawn(42)),
//	    sink.WithLeavesOnly(),
//	    sink.WithSize(1600, 1600),
//	)
//
// Without [WithView] the camera is fitted so the whole map, labels included,
// fills the image. With it, the sink draws exactly what the viewer shows:
// zoom, pan, rotation, label mode and link shape all come from the
// [view.State]. When the state asks for a different link shape than the
// layout was computed with, links are regenerated from the node anchors.
//
// # Orientation
//
// Layout angles increase counter-clockwise with y up. SVG and raster images
// have y down, so sinks negate y (and rotation) on output. A node at angle
// π/2 is therefore drawn above the root.
package sink

// Package styles provides the visual styles used by the radial map sinks.
//
// # Overview
//
// A [Style] writes SVG fragments for the three kinds of map element: link
// polylines, endpoint dots and node labels. It also exposes a [Palette] so that
// raster sinks (PNG, terminal) draw with the same colours.
//
// Two styles are available:
//
//   - [Simple]: the classic viewer look. Thin translucent grey links, dark dots
//     and small dark sans-serif labels on white.
//   - [Handdrawn]: sketchy ink. Link interiors wobble by a few tenths of a world
//     unit and labels use a script font stack.
//
// # Reproducible Randomness
//
// The handdrawn style derives its jitter from a seed and the link's endpoint
// IDs, so the same layout rendered twice with the same seed is byte-identical:
//
//	style := styles.NewHanddrawn(42)
//
// # Coordinates
//
// Styles receive SVG coordinates: y already points down and rotations are
// clockwise. Converting from world space is the sink's job.
package styles

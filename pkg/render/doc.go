// Package render provides visualization output for radial mind-map layouts.
//
// # Overview
//
// This package contains the rendering side of radialmap. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG) via rsvg-convert
//   - Radial map sinks (in [sink]): SVG, native PNG, PDF, JSON
//   - Visual styles (in [styles]): simple, handdrawn
//   - Graphviz twopi comparison views (in [nodelink])
//   - Terminal rendering (in [term])
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). The radial sink uses ToPDF;
// its PNG output is rasterized natively and needs no external tool.
//
//	svg, _ := sink.RenderSVG(layout, sink.WithStyle(styles.Simple{}))
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// # Twopi Comparison
//
// The [nodelink] subpackage hands the same tree to Graphviz's twopi engine,
// which places nodes on concentric rings by depth. Comparing its output with
// the native radial layout is the quickest way to sanity-check a document.
//
// [sink]: github.com/matzehuels/radialmap/pkg/render/sink
// [styles]: github.com/matzehuels/radialmap/pkg/render/styles
// [nodelink]: github.com/matzehuels/radialmap/pkg/render/nodelink
// [term]: github.com/matzehuels/radialmap/pkg/render/term
package render

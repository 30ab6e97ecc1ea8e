// Package pkg provides the core libraries for radialmap mind-map layout.
//
// # Overview
//
// radialmap draws a tree as concentric rings: the root sits at the center,
// every generation lies on its own ring, and each subtree owns an angular
// sector proportional to its leaf count. The pkg directory is organized into
// four main areas:
//
//  1. Domain logic: [mindmap], [layout], [layout/link], [view]
//  2. Rendering: [render] and its sink, styles, nodelink and term subpackages
//  3. Serialization: [graph]
//  4. Infrastructure: [pipeline], [cache], [storage], [session], [config],
//     [observability], [errors], [buildinfo]
//
// # Architecture
//
// The typical data flow through radialmap:
//
//	FreeMind (.mm) or nested JSON document
//	         ↓
//	    [mindmap] package (arena tree in pre-order)
//	         ↓
//	    [layout] package (leaf counts → sectors → positions)
//	         ↓
//	    [graph] package (serialized layout with link polylines)
//	         ↓
//	    SVG/PDF/PNG/JSON output, or the terminal viewer
//
// # Quick Start
//
//	t, _ := mindmap.ReadFreeMindFile("ideas.mm", mindmap.DefaultChildOrder)
//	cfg := layout.Config{RadiusStep: layout.DefaultRadiusStep}
//	_ = layout.Compute(t, cfg)
//	l := graph.FromTree(t, cfg, link.DefaultOptions(cfg.RadiusStep))
//	svg, _ := sink.RenderSVG(l, sink.WithStyle(styles.Simple{}))
//
// Most callers go through [pipeline.Runner], which adds validation, caching
// and observability hooks around the same steps.
//
// # Main Packages
//
// [mindmap] - FreeMind XML loading (nested JSON trees live in [graph])
// into an index-based arena with explicit child order.
//
// [layout] - The three layout passes. Iterative, so very deep trees do not
// exhaust the stack.
//
// [layout/link] - Straight or cubic Bézier connectors between parents and
// children, pulled radially so they leave and enter nodes along their rays.
//
// [view] - Camera state (zoom, pan, rotation, display toggles) shared by the
// renderers and the terminal viewer, plus label placement.
//
// [pipeline] - parse → layout → render used by the CLI and the HTTP API.
//
// [cache] - Content-addressed caches: file, LRU, Redis and null.
//
// [storage] - Published layouts in memory or MongoDB.
//
// [session] - Per-document viewer state saved between runs.
//
// [mindmap]: https://pkg.go.dev/github.com/matzehuels/radialmap/pkg/mindmap
// [layout]: https://pkg.go.dev/github.com/matzehuels/radialmap/pkg/layout
// [layout/link]: https://pkg.go.dev/github.com/matzehuels/radialmap/pkg/layout/link
// [view]: https://pkg.go.dev/github.com/matzehuels/radialmap/pkg/view
// [render]: https://pkg.go.dev/github.com/matzehuels/radialmap/pkg/render
// [graph]: https://pkg.go.dev/github.com/matzehuels/radialmap/pkg/graph
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/radialmap/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/radialmap/pkg/pipeline#Runner
// [cache]: https://pkg.go.dev/github.com/matzehuels/radialmap/pkg/cache
// [storage]: https://pkg.go.dev/github.com/matzehuels/radialmap/pkg/storage
// [session]: https://pkg.go.dev/github.com/matzehuels/radialmap/pkg/session
// [config]: https://pkg.go.dev/github.com/matzehuels/radialmap/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/radialmap/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/radialmap/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/radialmap/pkg/buildinfo
package pkg

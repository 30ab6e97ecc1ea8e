// Package graph provides serialization types for mind-map trees and radial
// layouts.
//
// This package defines the canonical wire format for radialmap data, used for
// JSON files, API responses, caching, and document storage (every type also
// carries bson tags).
//
// # Architecture
//
// The package sits at the serialization boundary between internal
// representations and external formats:
//
//   - [Tree], [Layout]: Serialization types (this package)
//   - pkg/mindmap.Tree: Internal arena tree with layout geometry
//   - pkg/layout/link.Link: Internal connector geometry
//
// Use [FromTree] and [Layout.Tree] to convert between them.
//
// # Constants
//
// This package is the single source of truth for visualization constants:
//
//	graph.VizTypeRadial    // "radial"
//	graph.VizTypeTwopi     // "twopi"
//	graph.StyleSimple      // "simple"
//	graph.StyleHanddrawn   // "handdrawn"
//
// # Tree Serialization
//
// Mind maps can be supplied as nested JSON instead of FreeMind XML:
//
//	{
//	  "id": "root", "text": "Project",
//	  "children": [
//	    {"text": "Goals", "children": [{"text": "Ship"}]},
//	    {"id": "risks", "text": "Risks"}
//	  ]
//	}
//
// Missing IDs are synthesized exactly as for FreeMind documents.
//
//	t, _ := graph.ReadTreeFile("ideas.json", mindmap.ChildOrderDocument)
//	graph.WriteTree(os.Stdout, t)
//
// # Layout Serialization
//
// Layouts are discriminated by VizType:
//
//	layout, _ := graph.UnmarshalLayout(data)
//	if layout.IsRadial() {
//	    // Nodes carry positions, Links carry polylines
//	} else {
//	    // Use layout.DOT for Graphviz rendering
//	}
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package graph

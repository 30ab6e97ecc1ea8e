package graph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/radialmap/pkg/layout"
	"github.com/matzehuels/radialmap/pkg/layout/link"
	"github.com/matzehuels/radialmap/pkg/mindmap"
)

// =============================================================================
// Layout - Unified Visualization Format
// =============================================================================

// Layout is the unified serialization format for all visualizations.
//
// This is a discriminated union type - check VizType to determine which
// fields are populated:
//
//	Radial ("radial"):
//	  - Nodes: every node with its sector, angle, radius and position
//	  - Links: connector polylines in world coordinates
//	  - RadiusStep, ChildOrder, Curved, Samples, TangentStrength: the
//	    parameters that produced them
//
//	Twopi ("twopi"):
//	  - DOT: Graphviz DOT string for rendering
//	  - Engine: Graphviz layout engine ("twopi")
//
// Width and Height are the requested raster size; Style and Seed select the
// visual style.
type Layout struct {
	// Discriminator
	VizType string `json:"viz_type" bson:"viz_type"`

	// Common dimensions and style
	Width  float64 `json:"width,omitempty" bson:"width,omitempty"`
	Height float64 `json:"height,omitempty" bson:"height,omitempty"`
	Style  string  `json:"style,omitempty" bson:"style,omitempty"`
	Seed   uint64  `json:"seed,omitempty" bson:"seed,omitempty"`

	// Radial-specific
	RadiusStep      float64 `json:"radius_step,omitempty" bson:"radius_step,omitempty"`
	ChildOrder      string  `json:"child_order,omitempty" bson:"child_order,omitempty"`
	Curved          bool    `json:"curved,omitempty" bson:"curved,omitempty"`
	Samples         int     `json:"samples,omitempty" bson:"samples,omitempty"`
	TangentStrength float64 `json:"tangent_strength" bson:"tangent_strength"`
	Nodes           []Node  `json:"nodes,omitempty" bson:"nodes,omitempty"`
	Links           []Link  `json:"links,omitempty" bson:"links,omitempty"`

	// Twopi-specific
	DOT    string `json:"dot,omitempty" bson:"dot,omitempty"`
	Engine string `json:"engine,omitempty" bson:"engine,omitempty"`
}

// IsRadial returns true if this is a radial layout.
func (l *Layout) IsRadial() bool { return l.VizType == VizTypeRadial }

// IsTwopi returns true if this is a Graphviz twopi layout.
func (l *Layout) IsTwopi() bool { return l.VizType == VizTypeTwopi }

// Extent returns the largest node radius of a radial layout.
func (l *Layout) Extent() float64 {
	var r float64
	for _, n := range l.Nodes {
		r = max(r, n.Radius)
	}
	return r
}

// LinkOptions returns the link parameters recorded in the layout.
func (l *Layout) LinkOptions() link.Options {
	return link.Options{
		Curved:          l.Curved,
		Samples:         l.Samples,
		TangentStrength: l.TangentStrength,
		RadiusStep:      l.RadiusStep,
	}
}

// =============================================================================
// Conversion
// =============================================================================

// FromTree exports a laid-out tree and its links as a radial Layout.
func FromTree(t *mindmap.Tree, cfg layout.Config, opts link.Options) Layout {
	l := Layout{
		VizType:         VizTypeRadial,
		RadiusStep:      cfg.RadiusStep,
		ChildOrder:      t.Order().String(),
		Curved:          opts.Curved,
		Samples:         opts.Samples,
		TangentStrength: opts.TangentStrength,
		Nodes:           make([]Node, t.Len()),
	}
	for i, n := range t.Nodes() {
		l.Nodes[i] = Node{
			ID:          n.ID,
			Text:        n.Text,
			Parent:      int(n.Parent),
			Depth:       n.Depth,
			LeafCount:   n.LeafCount,
			SectorStart: n.SectorStart,
			SectorEnd:   n.SectorEnd,
			Angle:       n.Angle,
			Radius:      n.Radius,
			X:           n.X,
			Y:           n.Y,
		}
	}

	links := link.All(t, opts)
	l.Links = make([]Link, len(links))
	for i, lk := range links {
		pts := make([]Point, len(lk.Points))
		for j, p := range lk.Points {
			pts[j] = Point{X: p.X, Y: p.Y}
		}
		l.Links[i] = Link{From: t.Node(lk.From).ID, To: t.Node(lk.To).ID, Points: pts}
	}
	return l
}

// Tree rebuilds the laid-out arena tree from a radial layout, including all
// geometry fields.
func (l *Layout) Tree() (*mindmap.Tree, error) {
	if !l.IsRadial() {
		return nil, fmt.Errorf("invalid viz_type for radial layout: %q", l.VizType)
	}
	nodes := make([]mindmap.Node, len(l.Nodes))
	for i, n := range l.Nodes {
		nodes[i] = mindmap.Node{
			ID:          n.ID,
			Text:        n.Text,
			Parent:      mindmap.NodeID(n.Parent),
			Depth:       n.Depth,
			LeafCount:   n.LeafCount,
			SectorStart: n.SectorStart,
			SectorEnd:   n.SectorEnd,
			Angle:       n.Angle,
			Radius:      n.Radius,
			X:           n.X,
			Y:           n.Y,
		}
	}
	return mindmap.FromNodes(nodes, mindmap.ChildOrder(l.ChildOrder))
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates that required fields are present for the viz type.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate checks that the fields required by the viz type are present.
// An empty VizType is treated as radial.
func (l *Layout) Validate() error {
	if l.VizType == "" {
		l.VizType = VizTypeRadial
	}
	switch l.VizType {
	case VizTypeRadial:
		if len(l.Nodes) == 0 {
			return fmt.Errorf("radial layout must contain nodes")
		}
		if len(l.Links) != len(l.Nodes)-1 {
			return fmt.Errorf("radial layout has %d links for %d nodes", len(l.Links), len(l.Nodes))
		}
	case VizTypeTwopi:
		if l.DOT == "" {
			return fmt.Errorf("twopi layout must contain DOT string")
		}
	default:
		return fmt.Errorf("unknown viz_type %q", l.VizType)
	}
	return nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}

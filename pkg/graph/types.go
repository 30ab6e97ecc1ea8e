package graph

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Visualization types.
const (
	VizTypeRadial = "radial"
	VizTypeTwopi  = "twopi"
)

// Visual styles for rendering.
const (
	StyleSimple    = "simple"
	StyleHanddrawn = "handdrawn"
)

// =============================================================================
// Node - Positioned Mind-Map Entry
// =============================================================================

// Node is a laid-out mind-map node. Nodes appear in pre-order; Parent is the
// index of the parent within the same slice, or -1 for the root.
type Node struct {
	ID          string  `json:"id" bson:"id"`
	Text        string  `json:"text,omitempty" bson:"text,omitempty"` // Display label (defaults to ID)
	Parent      int     `json:"parent" bson:"parent"`
	Depth       int     `json:"depth" bson:"depth"`
	LeafCount   int     `json:"leaf_count" bson:"leaf_count"`
	SectorStart float64 `json:"sector_start" bson:"sector_start"`
	SectorEnd   float64 `json:"sector_end" bson:"sector_end"`
	Angle       float64 `json:"angle" bson:"angle"`
	Radius      float64 `json:"radius" bson:"radius"`
	X           float64 `json:"x" bson:"x"`
	Y           float64 `json:"y" bson:"y"`
}

// DisplayLabel returns the text if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Text != "" {
		return n.Text
	}
	return n.ID
}

// =============================================================================
// Link - Connector Polyline
// =============================================================================

// Point is a world-space coordinate.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Link is the polyline joining a parent node to a child node.
type Link struct {
	From   string  `json:"from" bson:"from"`
	To     string  `json:"to" bson:"to"`
	Points []Point `json:"points" bson:"points"`
}

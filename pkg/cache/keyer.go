package cache

// Keyer derives cache keys for each pipeline stage.
type Keyer interface {
	// TreeKey identifies a parsed tree by the hash of its source document.
	TreeKey(docHash string, opts TreeKeyOpts) string
	// LayoutKey identifies a layout by the hash of its tree.
	LayoutKey(treeHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies a rendered output by the hash of its layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// TreeKeyOpts are the parse options that change the resulting tree.
type TreeKeyOpts struct {
	Format     string `json:"format"`
	ChildOrder string `json:"child_order"`
}

// LayoutKeyOpts are the layout options that change the resulting geometry.
type LayoutKeyOpts struct {
	VizType         string  `json:"viz_type"`
	RadiusStep      float64 `json:"radius_step"`
	Curved          bool    `json:"curved"`
	Samples         int     `json:"samples"`
	TangentStrength float64 `json:"tangent_strength"`
}

// ArtifactKeyOpts are the render options that change the output bytes.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`
	Style      string `json:"style"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	LeavesOnly bool   `json:"leaves_only"`
	Seed       uint64 `json:"seed"`
}

// DefaultKeyer hashes the stage input together with its options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) TreeKey(docHash string, opts TreeKeyOpts) string {
	return hashKey("tree", docHash, opts)
}

func (DefaultKeyer) LayoutKey(treeHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", treeHash, opts)
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

var _ Keyer = DefaultKeyer{}

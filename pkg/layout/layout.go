package layout

import (
	"math"

	"github.com/matzehuels/radialmap/pkg/errors"
	"github.com/matzehuels/radialmap/pkg/mindmap"
)

// DefaultRadiusStep is the world distance between consecutive depth rings.
const DefaultRadiusStep = 35.0

// FullCircle is the sector assigned to the root.
const FullCircle = 2 * math.Pi

// Config controls the radial layout.
type Config struct {
	// RadiusStep is the radius increment per level of depth. Must be a finite
	// positive number.
	RadiusStep float64
}

// DefaultConfig returns a Config with DefaultRadiusStep.
func DefaultConfig() Config {
	return Config{RadiusStep: DefaultRadiusStep}
}

// Validate reports an INVALID_CONFIG error for unusable settings.
func (c Config) Validate() error {
	return errors.ValidatePositive("radius_step", c.RadiusStep)
}

// Compute lays out the whole tree. Every node's geometry fields are
// overwritten; nothing from a previous run carries over.
//
// The only failure mode is an invalid Config. A nil or empty tree is a no-op.
func Compute(t *mindmap.Tree, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if t == nil || t.Len() == 0 {
		return nil
	}
	root := t.Root()
	CountLeaves(t, root, 0)
	AssignAngles(t, root, 0, FullCircle)
	AssignPositions(t, root, cfg.RadiusStep)
	return nil
}

// Extent returns the largest node radius, which bounds the drawing.
// It is only meaningful after [Compute].
func Extent(t *mindmap.Tree) float64 {
	var r float64
	for _, n := range t.Nodes() {
		r = max(r, n.Radius)
	}
	return r
}

package sink

import "github.com/matzehuels/radialmap/pkg/graph"

// RenderJSON exports the layout as pretty-printed JSON. The output is the
// canonical layout format and can be fed back to the other sinks through
// graph.UnmarshalLayout.
func RenderJSON(l graph.Layout) ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return graph.MarshalLayout(l)
}

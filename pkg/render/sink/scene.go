package sink

import (
	"fmt"
	"unicode/utf8"

	"github.com/matzehuels/radialmap/pkg/graph"
	"github.com/matzehuels/radialmap/pkg/layout/link"
	"github.com/matzehuels/radialmap/pkg/mindmap"
	"github.com/matzehuels/radialmap/pkg/render/styles"
	"github.com/matzehuels/radialmap/pkg/view"
)

// labelCharWidth approximates glyph advance as a fraction of font size.
const labelCharWidth = 0.6

// scene is a layout resolved against a camera: everything a sink draws, in
// world coordinates.
type scene struct {
	tree     *mindmap.Tree
	state    view.State
	links    []graph.Link
	labels   []view.Label
	fontSize float64 // world units
}

func buildScene(l graph.Layout, r renderer) (scene, error) {
	if l.VizType == "" {
		l.VizType = graph.VizTypeRadial
	}
	if !l.IsRadial() {
		return scene{}, fmt.Errorf("sink: cannot render viz_type %q (want %q)", l.VizType, graph.VizTypeRadial)
	}
	t, err := l.Tree()
	if err != nil {
		return scene{}, fmt.Errorf("sink: %w", err)
	}

	var state view.State
	if r.state != nil {
		state = *r.state
		state.Resize(r.width, r.height)
	} else {
		state = view.Default()
		state.CurvedLinks = l.Curved
	}
	if r.leavesOnly {
		state.LeavesOnly = true
	}
	fontSize := styles.FontSize(state.LabelScale(view.LabelStrokeScale))

	if r.state == nil {
		margin := view.LabelPad + fontSize*labelCharWidth*float64(longestText(t)) + 2*styles.EndpointRadius
		fitted := view.Fit(l.Extent(), margin, r.width, r.height)
		fitted.CurvedLinks = state.CurvedLinks
		fitted.LeavesOnly = state.LeavesOnly
		state = fitted
	}

	links := l.Links
	if state.CurvedLinks != l.Curved || len(links) != t.Len()-1 {
		opts := l.LinkOptions()
		opts.Curved = state.CurvedLinks
		// Layouts without link parameters get the defaults; a recorded zero
		// tangent strength is kept.
		if opts.Samples == 0 {
			opts.Samples = link.DefaultSamples
			opts.TangentStrength = link.DefaultTangentStrength
		}
		links = convertLinks(t, link.All(t, opts))
	}

	return scene{
		tree:     t,
		state:    state,
		links:    links,
		labels:   view.Labels(t, state, view.LabelPad),
		fontSize: fontSize,
	}, nil
}

func convertLinks(t *mindmap.Tree, links []link.Link) []graph.Link {
	out := make([]graph.Link, len(links))
	for i, lk := range links {
		pts := make([]graph.Point, len(lk.Points))
		for j, p := range lk.Points {
			pts[j] = graph.Point{X: p.X, Y: p.Y}
		}
		out[i] = graph.Link{From: t.Node(lk.From).ID, To: t.Node(lk.To).ID, Points: pts}
	}
	return out
}

func longestText(t *mindmap.Tree) int {
	n := 0
	for _, node := range t.Nodes() {
		n = max(n, utf8.RuneCountInString(node.Text))
	}
	return n
}

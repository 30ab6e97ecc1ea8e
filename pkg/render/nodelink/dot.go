package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/radialmap/pkg/layout"
	"github.com/matzehuels/radialmap/pkg/mindmap"
	"github.com/matzehuels/radialmap/pkg/render"
)

// pointsPerInch converts world units (treated as points) into the inches
// Graphviz uses for ranksep.
const pointsPerInch = 72.0

// Options configures DOT generation.
type Options struct {
	// RadiusStep is the ring spacing in world units; it becomes ranksep.
	// Zero means layout.DefaultRadiusStep.
	RadiusStep float64

	// ShowIDs labels nodes with their ID instead of their text.
	ShowIDs bool
}

// ToDOT converts a mind map to Graphviz DOT for the twopi engine. The map
// root is pinned as the twopi centre and each tree level becomes one ring.
func ToDOT(t *mindmap.Tree, opts Options) string {
	step := opts.RadiusStep
	if step <= 0 {
		step = layout.DefaultRadiusStep
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=twopi;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  overlap=false;\n")
	fmt.Fprintf(&buf, "  ranksep=%s;\n", strconv.FormatFloat(step/pointsPerInch, 'f', 3, 64))
	if t == nil || t.Len() == 0 {
		buf.WriteString("}\n")
		return buf.String()
	}
	fmt.Fprintf(&buf, "  root=%q;\n", t.Node(t.Root()).ID)
	buf.WriteString("  node [shape=plaintext, fontsize=10, fontname=\"Helvetica\", margin=\"0.02,0.01\"];\n")
	buf.WriteString("  edge [arrowhead=none, color=\"#737373\"];\n")
	buf.WriteString("\n")

	for _, n := range t.Nodes() {
		label := n.Text
		if opts.ShowIDs || label == "" {
			label = n.ID
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, label)
	}

	buf.WriteString("\n")
	t.Edges(func(parent, child mindmap.NodeID) {
		fmt.Fprintf(&buf, "  %q -> %q;\n", t.Node(parent).ID, t.Node(child).ID)
	})

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG lays out a DOT graph with twopi and renders it to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	if strings.TrimSpace(dot) == "" {
		return nil, fmt.Errorf("parse DOT: empty input")
	}
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.TWOPI)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion. A scale of 2.0
// produces a 2x resolution image.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}

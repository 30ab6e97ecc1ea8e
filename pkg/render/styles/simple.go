package styles

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/matzehuels/radialmap/pkg/graph"
)

var simplePalette = Palette{
	Background: color.RGBA{255, 255, 255, 255},
	Link:       color.RGBA{115, 115, 115, 140}, // 0.45 grey at 0.55 alpha
	Dot:        color.RGBA{77, 77, 77, 242},    // 0.30 grey at 0.95 alpha
	Text:       color.RGBA{26, 26, 26, 255},    // 0.10 grey
}

// Simple is the flat grey style.
type Simple struct{}

func (Simple) Name() string     { return graph.StyleSimple }
func (Simple) Palette() Palette { return simplePalette }

func (Simple) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>\n")
	fmt.Fprintf(buf, "    .link { fill: none; stroke: %s; stroke-linecap: round; stroke-linejoin: round; vector-effect: non-scaling-stroke; }\n", rgba(simplePalette.Link))
	fmt.Fprintf(buf, "    .dot { fill: %s; }\n", rgba(simplePalette.Dot))
	fmt.Fprintf(buf, "    .label { fill: %s; font-family: Helvetica, Arial, sans-serif; dominant-baseline: central; }\n", rgba(simplePalette.Text))
	fmt.Fprintf(buf, "  </style>\n")
}

func (Simple) RenderLink(buf *bytes.Buffer, l Link) {
	fmt.Fprintf(buf, `  <polyline class="link" data-from="%s" data-to="%s" stroke-width="%.3g" points="`,
		EscapeXML(l.FromID), EscapeXML(l.ToID), l.Width)
	polylinePoints(buf, l.Points)
	buf.WriteString("\"/>\n")
}

func (Simple) RenderDot(buf *bytes.Buffer, d Dot) {
	fmt.Fprintf(buf, `  <circle class="dot" cx="%.3f" cy="%.3f" r="%.3g"/>`+"\n", d.X, d.Y, d.R)
}

func (Simple) RenderLabel(buf *bytes.Buffer, l Label) {
	renderLabel(buf, l, "label")
}

func renderLabel(buf *bytes.Buffer, l Label, class string) {
	fmt.Fprintf(buf, `  <text class="%s" data-node="%s" x="%.3f" y="%.3f" font-size="%.3g" text-anchor="%s"`,
		class, EscapeXML(l.ID), l.X, l.Y, l.Size, l.Anchor)
	if l.Rotation != 0 {
		fmt.Fprintf(buf, ` transform="rotate(%.3f %.3f %.3f)"`, l.Rotation, l.X, l.Y)
	}
	fmt.Fprintf(buf, ">%s</text>\n", EscapeXML(l.Text))
}

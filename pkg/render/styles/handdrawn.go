package styles

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/matzehuels/radialmap/pkg/graph"
)

const (
	wobbleAmplitude = 0.35 // world units
	inkOverdraw     = 0.6  // alpha of the second, offset stroke
)

var handdrawnPalette = Palette{
	Background: color.RGBA{253, 251, 245, 255}, // paper
	Link:       color.RGBA{60, 64, 72, 170},
	Dot:        color.RGBA{40, 42, 48, 235},
	Text:       color.RGBA{30, 30, 36, 255},
}

// Handdrawn is a sketchy ink style with seeded wobble.
type Handdrawn struct {
	seed uint64
}

// NewHanddrawn returns a handdrawn style. Equal seeds give identical output.
func NewHanddrawn(seed uint64) Handdrawn { return Handdrawn{seed: seed} }

func (Handdrawn) Name() string     { return graph.StyleHanddrawn }
func (Handdrawn) Palette() Palette { return handdrawnPalette }

func (Handdrawn) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>\n")
	fmt.Fprintf(buf, "    .link { fill: none; stroke: %s; stroke-linecap: round; stroke-linejoin: round; vector-effect: non-scaling-stroke; }\n", rgba(handdrawnPalette.Link))
	fmt.Fprintf(buf, "    .link.overdraw { opacity: %.2f; }\n", inkOverdraw)
	fmt.Fprintf(buf, "    .dot { fill: %s; }\n", rgba(handdrawnPalette.Dot))
	fmt.Fprintf(buf, "    .label { fill: %s; font-family: 'xkcd Script', 'Comic Neue', 'Comic Sans MS', cursive; dominant-baseline: central; }\n", rgba(handdrawnPalette.Text))
	fmt.Fprintf(buf, "  </style>\n")
}

func (h Handdrawn) RenderLink(buf *bytes.Buffer, l Link) {
	for pass, class := range []string{"link", "link overdraw"} {
		pts := h.wobble(l, uint64(pass))
		fmt.Fprintf(buf, `  <polyline class="%s" data-from="%s" data-to="%s" stroke-width="%.3g" points="`,
			class, EscapeXML(l.FromID), EscapeXML(l.ToID), l.Width)
		polylinePoints(buf, pts)
		buf.WriteString("\"/>\n")
	}
}

func (h Handdrawn) RenderDot(buf *bytes.Buffer, d Dot) {
	rng := h.rng(d.ID, 7)
	r := d.R * (0.9 + 0.25*rng.Float64())
	fmt.Fprintf(buf, `  <circle class="dot" cx="%.3f" cy="%.3f" r="%.3g"/>`+"\n", d.X, d.Y, r)
}

func (Handdrawn) RenderLabel(buf *bytes.Buffer, l Label) {
	renderLabel(buf, l, "label")
}

// wobble displaces interior points perpendicular to the local direction.
// Endpoints stay fixed so links still meet their dots. A straight two-point
// link gets a midpoint so it can bend.
func (h Handdrawn) wobble(l Link, pass uint64) []Point {
	src := l.Points
	if len(src) == 2 {
		mid := Point{(src[0].X + src[1].X) / 2, (src[0].Y + src[1].Y) / 2}
		src = []Point{src[0], mid, src[1]}
	}
	rng := h.rng(l.FromID+"\x00"+l.ToID, pass)
	out := make([]Point, len(src))
	copy(out, src)
	for i := 1; i < len(src)-1; i++ {
		dx := src[i+1].X - src[i-1].X
		dy := src[i+1].Y - src[i-1].Y
		norm := max(1e-9, math.Hypot(dx, dy))
		off := (rng.Float64()*2 - 1) * wobbleAmplitude
		out[i].X += -dy / norm * off
		out[i].Y += dx / norm * off
	}
	return out
}

func (h Handdrawn) rng(key string, salt uint64) *rand.Rand {
	f := fnv.New64a()
	f.Write([]byte(key))
	return rand.New(rand.NewPCG(h.seed^salt, f.Sum64()))
}

package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/radialmap/pkg/graph"
	"github.com/matzehuels/radialmap/pkg/render/styles"
)

// RenderSVG renders a radial layout as SVG. The viewBox is in world units,
// centred on the camera, with y flipped so angles run counter-clockwise on
// screen. Links are drawn first, then endpoint dots, then labels.
func RenderSVG(l graph.Layout, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	sc, err := buildScene(l, r)
	if err != nil {
		return nil, err
	}
	halfW, halfH := sc.state.HalfExtents()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.3f %.3f %.3f %.3f" width="%d" height="%d">`+"\n",
		-halfW, -halfH, 2*halfW, 2*halfH, r.width, r.height)
	r.style.RenderDefs(&buf)
	fmt.Fprintf(&buf, `  <rect x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="%s"/>`+"\n",
		-halfW, -halfH, 2*halfW, 2*halfH, hexColor(r.style.Palette().Background))

	open := cameraTransform(sc)
	if open != "" {
		fmt.Fprintf(&buf, "  <g transform=\"%s\">\n", open)
	}
	renderContent(&buf, r.style, sc)
	if open != "" {
		buf.WriteString("  </g>\n")
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// cameraTransform expresses rotate-then-pan in SVG's y-down frame.
func cameraTransform(sc scene) string {
	s := sc.state
	if s.RotationDeg == 0 && s.PanX == 0 && s.PanY == 0 {
		return ""
	}
	return fmt.Sprintf("translate(%.3f %.3f) rotate(%.3f)", -s.PanX, s.PanY, -s.RotationDeg)
}

func renderContent(buf *bytes.Buffer, style styles.Style, sc scene) {
	for _, lk := range sc.links {
		pts := make([]styles.Point, len(lk.Points))
		for i, p := range lk.Points {
			pts[i] = styles.Point{X: p.X, Y: -p.Y}
		}
		style.RenderLink(buf, styles.Link{FromID: lk.From, ToID: lk.To, Points: pts, Width: styles.LinkWidth})
	}
	if sc.tree.Len() > 1 {
		for _, n := range sc.tree.Nodes() {
			style.RenderDot(buf, styles.Dot{ID: n.ID, X: n.X, Y: -n.Y, R: styles.EndpointRadius})
		}
	}
	for _, lb := range sc.labels {
		style.RenderLabel(buf, styles.Label{
			ID:       sc.tree.Node(lb.Node).ID,
			Text:     lb.Text,
			X:        lb.X,
			Y:        -lb.Y,
			Rotation: -lb.Rotation,
			Anchor:   lb.Align.String(),
			Size:     sc.fontSize,
		})
	}
}

func hexColor(c interface{ RGBA() (r, g, b, a uint32) }) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

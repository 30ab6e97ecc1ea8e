package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/radialmap/pkg/graph"
	"github.com/matzehuels/radialmap/pkg/render/styles"
	"github.com/matzehuels/radialmap/pkg/view"
)

const (
	minLabelPixels = 7.0
	maxLabelPixels = 48.0
)

var (
	goRegular     *opentype.Font
	goRegularErr  error
	goRegularOnce sync.Once
)

func labelFont() (*opentype.Font, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = opentype.Parse(goregular.TTF)
	})
	return goRegular, goRegularErr
}

// RenderPNG rasterizes a radial layout natively. Links and dots are drawn
// with anti-aliased vector paths; labels use Go Regular and stay horizontal,
// start- or end-aligned at their anchors like the SVG output.
func RenderPNG(l graph.Layout, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	sc, err := buildScene(l, r)
	if err != nil {
		return nil, err
	}
	pal := r.style.Palette()

	dc := gg.NewContext(r.width, r.height)
	defer dc.Close()
	dc.ClearWithColor(gg.FromColor(pal.Background))

	s := sc.state
	dc.SetColor(pal.Link)
	dc.SetLineWidth(1)
	for _, lk := range sc.links {
		for i, p := range lk.Points {
			x, y := s.WorldToScreen(p.X, p.Y)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		if err := dc.Stroke(); err != nil {
			return nil, err
		}
	}

	if sc.tree.Len() > 1 {
		dc.SetColor(pal.Dot)
		radius := max(0.75, endpointPixels(s))
		for _, n := range sc.tree.Nodes() {
			x, y := s.WorldToScreen(n.X, n.Y)
			dc.DrawCircle(x, y, radius)
			if err := dc.Fill(); err != nil {
				return nil, err
			}
		}
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, err
	}
	img := toRGBA(dc.Image())
	if err := drawLabels(img, sc, pal.Text); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func endpointPixels(s view.State) float64 {
	return styles.EndpointRadius / s.WorldPerPixel()
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

func drawLabels(img *image.RGBA, sc scene, c color.RGBA) error {
	px := sc.fontSize / sc.state.WorldPerPixel()
	if px < minLabelPixels {
		return nil
	}
	fnt, err := labelFont()
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    math.Min(px, maxLabelPixels),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return err
	}
	defer face.Close()

	ascent := face.Metrics().Ascent.Ceil()
	d := &font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face}
	for _, lb := range sc.labels {
		x, y := sc.state.WorldToScreen(lb.X, lb.Y)
		if lb.Align == view.AlignEnd {
			x -= float64(font.MeasureString(face, lb.Text).Ceil())
		}
		d.Dot = fixed.Point26_6{
			X: fixed.I(int(math.Round(x))),
			Y: fixed.I(int(math.Round(y)) + ascent/3),
		}
		d.DrawString(lb.Text)
	}
	return nil
}

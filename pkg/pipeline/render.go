package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/radialmap/pkg/cache"
	"github.com/matzehuels/radialmap/pkg/errors"
	"github.com/matzehuels/radialmap/pkg/graph"
	"github.com/matzehuels/radialmap/pkg/render/nodelink"
	"github.com/matzehuels/radialmap/pkg/render/sink"
	"github.com/matzehuels/radialmap/pkg/render/styles"
	"github.com/matzehuels/radialmap/pkg/view"
)

// RenderFromLayout renders every requested format from a layout. Style and
// seed fall back to the values recorded in the layout.
func RenderFromLayout(ctx context.Context, l graph.Layout, opts Options) (map[string][]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid layout")
	}
	opts = applyLayoutMetadata(opts, l)
	if err := ValidateSize(opts.Width, opts.Height); err != nil {
		return nil, err
	}
	if l.Samples > MaxSamples {
		return nil, errors.New(errors.ErrCodeInvalidInput, "layout samples %d exceed %d", l.Samples, MaxSamples)
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		if l.IsTwopi() {
			data, err = renderTwopi(ctx, l, format)
		} else {
			data, err = renderRadial(ctx, l, format, opts)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderFromLayoutData renders from serialized layout JSON.
func RenderFromLayoutData(ctx context.Context, data []byte, opts Options) (map[string][]byte, error) {
	l, err := graph.UnmarshalLayout(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse layout")
	}
	return RenderFromLayout(ctx, l, opts)
}

func renderRadial(ctx context.Context, l graph.Layout, format string, opts Options) ([]byte, error) {
	sinkOpts := SinkOptions(opts)
	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, sinkOpts...)
	case FormatPNG:
		return sink.RenderPNG(l, sinkOpts...)
	case FormatPDF:
		return sink.RenderPDF(ctx, l, sinkOpts...)
	case FormatJSON:
		return sink.RenderJSON(l)
	}
	return nil, ValidateFormat(format)
}

func renderTwopi(ctx context.Context, l graph.Layout, format string) ([]byte, error) {
	switch format {
	case FormatSVG:
		return nodelink.RenderSVG(ctx, l.DOT)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, l.DOT, PNGScale)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, l.DOT)
	case FormatJSON:
		return graph.MarshalLayout(l)
	}
	return nil, ValidateFormat(format)
}

// SinkOptions translates render options into sink options.
func SinkOptions(opts Options) []sink.Option {
	out := []sink.Option{
		sink.WithStyle(styles.ByName(opts.Style, opts.Seed)),
		sink.WithSize(opts.Width, opts.Height),
	}
	if opts.LeavesOnly {
		out = append(out, sink.WithLeavesOnly())
	}
	if opts.View != nil {
		out = append(out, sink.WithView(*opts.View))
	}
	return out
}

// applyLayoutMetadata fills unset render options from the layout so stored
// layouts re-render the way they were computed.
func applyLayoutMetadata(opts Options, l graph.Layout) Options {
	if opts.Style == "" && l.Style != "" {
		opts.Style = l.Style
	}
	if opts.Seed == 0 && l.Seed != 0 {
		opts.Seed = l.Seed
	}
	if opts.Width == 0 && l.Width > 0 {
		opts.Width = int(l.Width)
	}
	if opts.Height == 0 && l.Height > 0 {
		opts.Height = int(l.Height)
	}
	opts.SetRenderDefaults()
	return opts
}

func viewKey(s view.State) string {
	data, _ := json.Marshal(s)
	return cache.Hash(data)[:16]
}

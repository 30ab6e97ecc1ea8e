// Package pipeline provides the parse → layout → render pipeline shared by
// the CLI and the HTTP API.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: load a FreeMind (.mm) or nested JSON document into a tree
//  2. Layout: compute the radial layout (or the twopi DOT source)
//  3. Render: produce SVG, PNG, PDF or JSON artifacts
//
// Each stage can be run on its own or through [Runner.Execute], which
// caches every stage by content hash.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Filename: "ideas.mm",
//	    Formats:  []string{"svg", "png"},
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/radialmap/pkg/cache"
	"github.com/matzehuels/radialmap/pkg/errors"
	"github.com/matzehuels/radialmap/pkg/graph"
	"github.com/matzehuels/radialmap/pkg/layout"
	"github.com/matzehuels/radialmap/pkg/layout/link"
	"github.com/matzehuels/radialmap/pkg/mindmap"
	"github.com/matzehuels/radialmap/pkg/render/sink"
	"github.com/matzehuels/radialmap/pkg/view"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	DefaultRadiusStep      = layout.DefaultRadiusStep
	DefaultSamples         = link.DefaultSamples
	DefaultTangentStrength = link.DefaultTangentStrength
	DefaultWidth           = sink.DefaultWidth
	DefaultHeight          = sink.DefaultHeight
	DefaultSeed            = uint64(42)

	DefaultVizType = graph.VizTypeRadial
	DefaultStyle   = graph.StyleSimple

	// PNGScale is the rsvg-convert scale used for twopi PNGs.
	PNGScale = 2.0
)

// Upper bounds on request-controlled sizes.
const (
	MaxSamples   = 1024
	MaxDimension = 8192
	MaxPixels    = 16 << 20 // width × height of one raster
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Input document formats.
const (
	InputFreeMind = "mm"
	InputJSON     = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	graph.StyleSimple:    true,
	graph.StyleHanddrawn: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	graph.VizTypeRadial: true,
	graph.VizTypeTwopi:  true,
}

// ValidInputs is the set of supported document formats.
var ValidInputs = map[string]bool{
	InputFreeMind: true,
	InputJSON:     true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline. It supports JSON
// for API requests; the document itself travels separately.
type Options struct {
	// Parse options
	Source     []byte `json:"-"`                     // Document content; read from Filename when empty
	Filename   string `json:"filename,omitempty"`    // Document path or name (used to infer Format)
	Format     string `json:"format,omitempty"`      // "mm" or "json"
	ChildOrder string `json:"child_order,omitempty"` // "document" or "reversed"
	Refresh    bool   `json:"refresh,omitempty"`     // Bypass cache reads

	// Layout options
	VizType         string  `json:"viz_type,omitempty"`
	RadiusStep      float64 `json:"radius_step,omitempty"`
	Curved          *bool   `json:"curved,omitempty"` // nil means curved
	Samples         int     `json:"samples,omitempty"`
	TangentStrength *float64 `json:"tangent_strength,omitempty"` // nil means DefaultTangentStrength

	// Render options
	Formats    []string    `json:"formats,omitempty"`
	Style      string      `json:"style,omitempty"`
	Width      int         `json:"width,omitempty"`
	Height     int         `json:"height,omitempty"`
	LeavesOnly bool        `json:"leaves_only,omitempty"`
	Seed       uint64      `json:"seed,omitempty"`
	View       *view.State `json:"view,omitempty"` // Camera; nil fits the map

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Bool returns a pointer to v, for Options.Curved.
func Bool(v bool) *bool { return &v }

// Float returns a pointer to v, for Options.TangentStrength.
func Float(v float64) *float64 { return &v }

// Result contains the outputs of a pipeline run.
type Result struct {
	Tree       *mindmap.Tree
	SourceHash string
	Layout     graph.Layout
	Artifacts  map[string][]byte
	Stats      Stats
	CacheInfo  CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	LeafCount  int
	Height     int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ParseHit  bool
	LayoutHit bool
	RenderHit bool // all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that an output format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: simple, handdrawn)", style)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType, "invalid viz_type: %q (must be one of: radial, twopi)", vizType)
	}
	return nil
}

// ValidateSize checks a raster size. Zero means the default; each side is
// capped at MaxDimension and the area at MaxPixels.
func ValidateSize(width, height int) error {
	if width < 0 || height < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "size must be positive, got %dx%d", width, height)
	}
	if width > MaxDimension || height > MaxDimension || width*height > MaxPixels {
		return errors.New(errors.ErrCodeInvalidConfig, "size %dx%d exceeds the %dx%d, %d pixel limit", width, height, MaxDimension, MaxDimension, MaxPixels)
	}
	return nil
}

// ValidateInput checks that a document format is valid.
func ValidateInput(format string) error {
	if !ValidInputs[format] {
		return errors.New(errors.ErrCodeInvalidDocument, "invalid document format: %q (must be one of: mm, json)", format)
	}
	return nil
}

// DetectInput infers the document format from a filename extension.
// Unknown extensions yield "".
func DetectInput(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mm", ".xml":
		return InputFreeMind
	case ".json":
		return InputJSON
	}
	return ""
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if len(o.Source) == 0 && o.Filename == "" {
		return errors.New(errors.ErrCodeInvalidInput, "document source or filename is required")
	}
	if o.Format == "" {
		o.Format = DetectInput(o.Filename)
	}
	if o.Format == "" {
		return errors.New(errors.ErrCodeInvalidDocument, "cannot infer document format from %q (use .mm or .json)", o.Filename)
	}
	if err := ValidateInput(o.Format); err != nil {
		return err
	}
	order, err := mindmap.ParseChildOrder(o.ChildOrder)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "child_order")
	}
	o.ChildOrder = order.String()
	o.setLogger()
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.ChildOrder == "" {
		o.ChildOrder = mindmap.DefaultChildOrder.String()
	}
	if o.RadiusStep == 0 {
		o.RadiusStep = DefaultRadiusStep
	}
	if o.Curved == nil {
		o.Curved = Bool(true)
	}
	if o.Samples == 0 {
		o.Samples = DefaultSamples
	}
	if o.TangentStrength == nil {
		o.TangentStrength = Float(DefaultTangentStrength)
	}
	o.setLogger()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := errors.ValidatePositive("radius_step", o.RadiusStep); err != nil {
		return err
	}
	if o.Samples < 1 || o.Samples > MaxSamples {
		return errors.New(errors.ErrCodeInvalidConfig, "samples must be in [1, %d], got %d", MaxSamples, o.Samples)
	}
	return errors.ValidateNonNegative("tangent_strength", *o.TangentStrength)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	return ValidateSize(o.Width, o.Height)
}

// IsRadial returns true if this is a radial visualization.
func (o *Options) IsRadial() bool {
	return o.VizType == "" || o.VizType == graph.VizTypeRadial
}

// IsTwopi returns true if this is a Graphviz twopi visualization.
func (o *Options) IsTwopi() bool {
	return o.VizType == graph.VizTypeTwopi
}

// CurvedLinks reports whether links are curved; nil Curved means true.
func (o *Options) CurvedLinks() bool {
	return o.Curved == nil || *o.Curved
}

// Tangent returns the tangent strength; nil means DefaultTangentStrength.
func (o *Options) Tangent() float64 {
	if o.TangentStrength == nil {
		return DefaultTangentStrength
	}
	return *o.TangentStrength
}

// Order returns the parsed child order.
func (o *Options) Order() mindmap.ChildOrder {
	order, err := mindmap.ParseChildOrder(o.ChildOrder)
	if err != nil {
		return mindmap.DefaultChildOrder
	}
	return order
}

// LayoutConfig returns the layout engine configuration.
func (o *Options) LayoutConfig() layout.Config {
	return layout.Config{RadiusStep: o.RadiusStep}
}

// LinkOptions returns the link geometry configuration.
func (o *Options) LinkOptions() link.Options {
	return link.Options{
		Curved:          o.CurvedLinks(),
		Samples:         o.Samples,
		TangentStrength: o.Tangent(),
		RadiusStep:      o.RadiusStep,
	}
}

// TreeKeyOpts returns cache key options for parsing.
func (o *Options) TreeKeyOpts() cache.TreeKeyOpts {
	return cache.TreeKeyOpts{Format: o.Format, ChildOrder: o.ChildOrder}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		VizType:         o.VizType,
		RadiusStep:      o.RadiusStep,
		Curved:          o.CurvedLinks(),
		Samples:         o.Samples,
		TangentStrength: o.Tangent(),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// Renders through an explicit camera are keyed by the full view state.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:     format,
		Style:      o.Style,
		Width:      o.Width,
		Height:     o.Height,
		LeavesOnly: o.LeavesOnly,
		Seed:       o.Seed,
	}
	if o.View != nil {
		k.Format = format + "@" + viewKey(*o.View)
	}
	return k
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Package config loads radialmap settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/radialmap/config.toml by default and
// supplies fallbacks for pipeline options and the HTTP server. Command-line
// flags always win: [Config.Apply] only fills options that are still unset.
//
//	[layout]
//	radius_step = 40
//	child_order = "reversed"
//
//	[render]
//	style = "handdrawn"
//
//	[server]
//	addr = ":9000"
//	timeout = "45s"
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/radialmap/pkg/errors"
	"github.com/matzehuels/radialmap/pkg/mindmap"
	"github.com/matzehuels/radialmap/pkg/pipeline"
)

// Server defaults.
const (
	DefaultAddr      = ":8080"
	DefaultDatabase  = "radialmap"
	DefaultTimeout   = 30 * time.Second
	DefaultCacheSize = 1024
)

// Config is the decoded configuration file.
type Config struct {
	Layout Layout `toml:"layout"`
	Render Render `toml:"render"`
	Cache  Cache  `toml:"cache"`
	Server Server `toml:"server"`
}

// Layout holds layout fallbacks.
type Layout struct {
	VizType         string  `toml:"viz_type,omitempty"`
	RadiusStep      float64 `toml:"radius_step,omitempty"`
	ChildOrder      string  `toml:"child_order,omitempty"`
	Curved          *bool   `toml:"curved,omitempty"`
	Samples         int     `toml:"samples,omitempty"`
	TangentStrength *float64 `toml:"tangent_strength,omitempty"`
}

// Render holds render fallbacks.
type Render struct {
	Formats    []string `toml:"formats,omitempty"`
	Style      string   `toml:"style,omitempty"`
	Width      int      `toml:"width,omitempty"`
	Height     int      `toml:"height,omitempty"`
	Seed       uint64   `toml:"seed,omitempty"`
	LeavesOnly bool     `toml:"leaves_only,omitempty"`
}

// Cache configures the CLI's file cache.
type Cache struct {
	Dir      string `toml:"dir,omitempty"` // empty means cache.DefaultDir
	Disabled bool   `toml:"disabled,omitempty"`
}

// Server configures `radialmap serve`. Environment variables and flags
// override these values.
type Server struct {
	Addr      string        `toml:"addr,omitempty"`
	Redis     string        `toml:"redis,omitempty"` // redis:// URL; empty uses an in-process LRU
	Mongo     string        `toml:"mongo,omitempty"` // mongodb:// URI; empty uses a memory store
	Database  string        `toml:"database,omitempty"`
	Timeout   time.Duration `toml:"timeout,omitempty"`
	CacheSize int           `toml:"cache_size,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout: Layout{
			VizType:         pipeline.DefaultVizType,
			RadiusStep:      pipeline.DefaultRadiusStep,
			ChildOrder:      mindmap.DefaultChildOrder.String(),
			Curved:          pipeline.Bool(true),
			Samples:         pipeline.DefaultSamples,
			TangentStrength: pipeline.Float(pipeline.DefaultTangentStrength),
		},
		Render: Render{
			Formats: []string{pipeline.FormatSVG},
			Style:   pipeline.DefaultStyle,
			Width:   pipeline.DefaultWidth,
			Height:  pipeline.DefaultHeight,
			Seed:    pipeline.DefaultSeed,
		},
		Server: Server{
			Addr:      DefaultAddr,
			Database:  DefaultDatabase,
			Timeout:   DefaultTimeout,
			CacheSize: DefaultCacheSize,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/radialmap/config.toml, falling back
// to the platform user config directory.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "radialmap", "config.toml"), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "radialmap", "config.toml"), nil
}

// Load reads the file at path over the defaults. An empty path means
// DefaultPath. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// Decode parses TOML data into cfg, keeping values the data does not set.
// Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Validate checks the enumerated and numeric settings.
func (c *Config) Validate() error {
	if c.Layout.VizType != "" {
		if err := pipeline.ValidateVizType(c.Layout.VizType); err != nil {
			return err
		}
	}
	if _, err := mindmap.ParseChildOrder(c.Layout.ChildOrder); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "layout.child_order")
	}
	if c.Layout.RadiusStep < 0 || c.Layout.Samples < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout values must not be negative")
	}
	if c.Layout.Samples > pipeline.MaxSamples {
		return errors.New(errors.ErrCodeInvalidConfig, "layout.samples must be <= %d, got %d", pipeline.MaxSamples, c.Layout.Samples)
	}
	if c.Layout.TangentStrength != nil {
		if err := errors.ValidateNonNegative("layout.tangent_strength", *c.Layout.TangentStrength); err != nil {
			return err
		}
	}
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return err
	}
	if c.Render.Style != "" {
		if err := pipeline.ValidateStyle(c.Render.Style); err != nil {
			return err
		}
	}
	if err := pipeline.ValidateSize(c.Render.Width, c.Render.Height); err != nil {
		return err
	}
	if c.Server.Timeout < 0 || c.Server.CacheSize < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server values must not be negative")
	}
	return nil
}

// Apply fills unset fields of opts from the configuration.
func (c *Config) Apply(opts *pipeline.Options) {
	if opts.VizType == "" {
		opts.VizType = c.Layout.VizType
	}
	if opts.RadiusStep == 0 {
		opts.RadiusStep = c.Layout.RadiusStep
	}
	if opts.ChildOrder == "" {
		opts.ChildOrder = c.Layout.ChildOrder
	}
	if opts.Curved == nil && c.Layout.Curved != nil {
		opts.Curved = pipeline.Bool(*c.Layout.Curved)
	}
	if opts.Samples == 0 {
		opts.Samples = c.Layout.Samples
	}
	if opts.TangentStrength == nil && c.Layout.TangentStrength != nil {
		opts.TangentStrength = pipeline.Float(*c.Layout.TangentStrength)
	}
	if len(opts.Formats) == 0 && len(c.Render.Formats) > 0 {
		opts.Formats = append([]string(nil), c.Render.Formats...)
	}
	if opts.Style == "" {
		opts.Style = c.Render.Style
	}
	if opts.Width == 0 {
		opts.Width = c.Render.Width
	}
	if opts.Height == 0 {
		opts.Height = c.Render.Height
	}
	if opts.Seed == 0 {
		opts.Seed = c.Render.Seed
	}
	opts.LeavesOnly = opts.LeavesOnly || c.Render.LeavesOnly
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

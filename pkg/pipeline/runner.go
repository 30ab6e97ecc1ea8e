package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/radialmap/pkg/cache"
	"github.com/matzehuels/radialmap/pkg/graph"
	"github.com/matzehuels/radialmap/pkg/mindmap"
	"github.com/matzehuels/radialmap/pkg/observability"
)

// Cache stage names, as reported to the observability hooks.
const (
	stageTree     = "tree"
	stageLayout   = "layout"
	stageArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can share one Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// A nil keyer means DefaultKeyer; a nil cache disables caching.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	parseStart := time.Now()
	src, err := ReadSource(opts)
	if err != nil {
		return nil, err
	}
	opts.Source = src
	t, parseHit, err := r.ParseWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Tree = t
	result.SourceHash = cache.Hash(src)
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.NodeCount = t.Len()
	result.Stats.LeafCount = t.Leaves()
	result.Stats.Height = t.Height()
	result.CacheInfo.ParseHit = parseHit

	opts.Logger.Info("parsed mind map",
		"nodes", t.Len(),
		"leaves", result.Stats.LeafCount,
		"depth", result.Stats.Height,
		"cached", parseHit,
		"duration", result.Stats.ParseTime)

	layoutStart := time.Now()
	l, layoutHit, err := r.GenerateLayoutWithCacheInfo(ctx, t, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	if layoutHit && l.IsRadial() {
		if laidOut, terr := l.Tree(); terr == nil {
			result.Tree = laidOut
		}
	}
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	opts.Logger.Info("computed layout",
		"viz_type", l.VizType,
		"links", len(l.Links),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ParseWithCacheInfo loads the document with caching and reports whether
// the tree came from the cache.
func (r *Runner) ParseWithCacheInfo(ctx context.Context, opts Options) (t *mindmap.Tree, hit bool, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForParse(); err != nil {
		return nil, false, err
	}

	src, err := ReadSource(opts)
	if err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, opts.Format, len(src))
	start := time.Now()
	defer func() {
		n := 0
		if t != nil {
			n = t.Len()
		}
		hooks.OnParseComplete(ctx, opts.Format, n, time.Since(start), err)
	}()

	key := r.Keyer.TreeKey(cache.Hash(src), opts.TreeKeyOpts())
	if !opts.Refresh {
		if data, ok := r.get(ctx, stageTree, key); ok {
			if cached, derr := decodeTree(data); derr == nil {
				return cached, true, nil
			}
			opts.Logger.Debug("discarding unreadable cached tree", "key", key)
		}
	}

	t, err = Parse(src, opts)
	if err != nil {
		return nil, false, err
	}
	if data, eerr := encodeTree(t); eerr == nil {
		r.set(ctx, stageTree, key, data, cache.TreeTTL)
	}
	return t, false, nil
}

// Parse is ParseWithCacheInfo without the cache hit info.
func (r *Runner) Parse(ctx context.Context, opts Options) (*mindmap.Tree, error) {
	t, _, err := r.ParseWithCacheInfo(ctx, opts)
	return t, err
}

// GenerateLayoutWithCacheInfo computes a layout with caching and reports
// whether it came from the cache. On a miss t is laid out in place.
func (r *Runner) GenerateLayoutWithCacheInfo(ctx context.Context, t *mindmap.Tree, opts Options) (l graph.Layout, hit bool, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return graph.Layout{}, false, err
	}
	opts.SetRenderDefaults()
	if err := ValidateSize(opts.Width, opts.Height); err != nil {
		return graph.Layout{}, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.VizType, t.Len())
	start := time.Now()
	defer func() { hooks.OnLayoutComplete(ctx, opts.VizType, time.Since(start), err) }()

	treeData, err := encodeTree(t)
	if err != nil {
		return graph.Layout{}, false, fmt.Errorf("hash tree: %w", err)
	}
	key := r.Keyer.LayoutKey(cache.Hash(treeData), opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, ok := r.get(ctx, stageLayout, key); ok {
			if cached, uerr := graph.UnmarshalLayout(data); uerr == nil {
				// render metadata is not part of the key
				cached.Width, cached.Height = float64(opts.Width), float64(opts.Height)
				cached.Style, cached.Seed = opts.Style, opts.Seed
				return cached, true, nil
			}
		}
	}

	l, err = GenerateLayout(t, opts)
	if err != nil {
		return graph.Layout{}, false, err
	}
	if data, merr := graph.MarshalLayout(l); merr == nil {
		r.set(ctx, stageLayout, key, data, cache.LayoutTTL)
	}
	return l, false, nil
}

// GenerateLayout is GenerateLayoutWithCacheInfo without the cache hit info.
func (r *Runner) GenerateLayout(ctx context.Context, t *mindmap.Tree, opts Options) (graph.Layout, error) {
	l, _, err := r.GenerateLayoutWithCacheInfo(ctx, t, opts)
	return l, err
}

// RenderWithCacheInfo renders artifacts with caching and reports whether
// all of them came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l graph.Layout, opts Options) (artifacts map[string][]byte, hit bool, err error) {
	r.applyLogger(&opts)
	opts = applyLayoutMetadata(opts, l)
	if l.VizType != "" {
		opts.VizType = l.VizType
	}
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	layoutData, err := graph.MarshalLayout(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	if !opts.Refresh {
		cached := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, ok := r.get(ctx, stageArtifact, r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format)))
			if !ok {
				break
			}
			cached[format] = data
		}
		if len(cached) == len(opts.Formats) {
			return cached, true, nil
		}
	}

	artifacts, err = RenderFromLayout(ctx, l, opts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range artifacts {
		r.set(ctx, stageArtifact, r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format)), data, cache.ArtifactTTL)
	}
	return artifacts, false, nil
}

// Render is RenderWithCacheInfo without the cache hit info.
func (r *Runner) Render(ctx context.Context, l graph.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// get reads a cache entry; backend errors count as misses.
func (r *Runner) get(ctx context.Context, stage, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "stage", stage, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, stage)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, stage)
	return data, true
}

func (r *Runner) set(ctx context.Context, stage, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "stage", stage, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, stage, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

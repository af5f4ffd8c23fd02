package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ringlayout/pkg/cache"
	"github.com/matzehuels/ringlayout/pkg/circle"
	"github.com/matzehuels/ringlayout/pkg/observability"
	"github.com/matzehuels/ringlayout/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
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

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	sc, err := LoadScene(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Scene = sc
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Sections = len(sc.Sections)

	// Stage 2: Layout
	layoutStart := time.Now()
	l, hash, layoutHit, err := r.LayoutWithCacheInfo(ctx, sc, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.SceneHash = hash
	result.Stats.Items = l.Len()
	result.Stats.Overlaps = l.OverlapCount()
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"scene", sc.Name,
		"items", l.Len(),
		"clustering", l.Params.Clustering,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)
	if result.Stats.Overlaps > 0 {
		r.Logger.Warn("items overlap", "pairs", result.Stats.Overlaps)
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, sc, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo computes the layout of sc with caching. It returns the
// layout, the scene hash used for the cache key, and whether the cache hit.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, sc *scene.Scene, opts Options) (circle.Layout, string, bool, error) {
	r.applyLogger(&opts)

	data, err := sc.Canonical()
	if err != nil {
		return circle.Layout{}, "", false, fmt.Errorf("hash scene: %w", err)
	}
	sceneHash := cache.Hash(data)
	cacheKey := r.Keyer.LayoutKey(sceneHash, opts.LayoutKeyOpts(sc))

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, sc.Name, sc.Counts().Total())
	start := time.Now()

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if cached, ok := r.getCached(ctx, cacheKey, "layout"); ok {
			l, err := UnmarshalLayout(cached)
			if err == nil {
				hooks.OnLayoutComplete(ctx, sc.Name, time.Since(start), nil)
				return l, sceneHash, true, nil
			}
			opts.Logger.Debug("discarding unreadable cached layout", "error", err)
		}
	}

	l := GenerateLayout(sc)
	hooks.OnLayoutComplete(ctx, sc.Name, time.Since(start), nil)

	if encoded, err := MarshalLayout(l, sc); err == nil {
		r.setCached(ctx, cacheKey, "layout", encoded, cache.TTLLayout)
	}
	return l, sceneHash, false, nil
}

// Layout is a convenience wrapper that discards the cache info.
func (r *Runner) Layout(ctx context.Context, sc *scene.Scene, opts Options) (circle.Layout, error) {
	l, _, _, err := r.LayoutWithCacheInfo(ctx, sc, opts)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l circle.Layout, sc *scene.Scene, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Cache key from layout data, which includes labels
	layoutData, err := MarshalLayout(l, sc)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	artifacts := make(map[string][]byte)
	var missing []string
	for _, format := range opts.Formats {
		if opts.Refresh {
			missing = append(missing, format)
			continue
		}
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, ok := r.getCached(ctx, key, "artifact"); ok {
			artifacts[format] = data
		} else {
			missing = append(missing, format)
		}
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, missing)
	start := time.Now()

	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := Render(ctx, l, sc, renderOpts)
	hooks.OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		r.setCached(ctx, key, "artifact", data, cache.TTLArtifact)
		artifacts[format] = data
	}
	return artifacts, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l circle.Layout, sc *scene.Scene, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, sc, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) getCached(ctx context.Context, key, keyType string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Debug("cache read failed", "type", keyType, "error", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) setCached(ctx context.Context, key, keyType string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Debug("cache write failed", "type", keyType, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

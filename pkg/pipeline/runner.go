package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/starmap/pkg/cache"
	"github.com/matzehuels/starmap/pkg/galaxy"
	"github.com/matzehuels/starmap/pkg/graph"
	"github.com/matzehuels/starmap/pkg/observability"
	"github.com/matzehuels/starmap/pkg/rng"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so caching logic lives in one place.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
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

// Execute runs the complete generate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Generate
	genStart := time.Now()
	doc, hit, err := r.GenerateWithCacheInfo(ctx, opts.Config, opts.Seed, opts.Refresh)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Document = doc
	result.Stats.GenerateTime = time.Since(genStart)
	result.CacheInfo.GenerateHit = hit

	r.Logger.Info("generated galaxy",
		"seed", doc.Seed,
		"constellations", doc.Stats.Constellations,
		"stars", doc.Stats.Stars,
		"links", doc.Stats.Links,
		"cached", hit,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	if data, err := graph.Marshal(doc); err == nil {
		result.DocHash = cache.Hash(data)
	}
	if g, err := doc.Galaxy(); err == nil {
		result.Galaxy = g
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo builds the galaxy for cfg and seed and reports
// whether it came from the cache. With refresh set the cache is not read,
// but the fresh document is still written back.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, cfg galaxy.Config, seed int64, refresh bool) (graph.Document, bool, error) {
	if err := cfg.Validate(); err != nil {
		return graph.Document{}, false, err
	}

	cacheKey := r.Keyer.GalaxyKey(cfg, seed)
	if !refresh {
		if doc, ok := r.cachedDocument(ctx, cacheKey); ok {
			return doc, true, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, seed)
	start := time.Now()

	g, err := galaxy.Generate(cfg, rng.New(uint64(seed)))
	if err != nil {
		hooks.OnGenerateComplete(ctx, seed, galaxy.Stats{}, time.Since(start), err)
		return graph.Document{}, false, err
	}
	doc := graph.FromGalaxy(g, cfg, seed)
	hooks.OnGenerateComplete(ctx, seed, doc.Stats, time.Since(start), nil)

	if data, err := graph.Marshal(doc); err == nil {
		r.store(ctx, cache.KeyTypeGalaxy, cacheKey, data, cache.TTLGalaxy)
	}
	return doc, false, nil
}

// Generate is a convenience wrapper that discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, cfg galaxy.Config, seed int64) (graph.Document, error) {
	doc, _, err := r.GenerateWithCacheInfo(ctx, cfg, seed, false)
	return doc, err
}

func (r *Runner) cachedDocument(ctx context.Context, key string) (graph.Document, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "error", err)
		return graph.Document{}, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, cache.KeyTypeGalaxy)
		return graph.Document{}, false
	}
	doc, err := graph.Unmarshal(data)
	if err != nil {
		// Stale or corrupt entry; regenerate.
		r.Logger.Debug("discarding cached galaxy", "key", key, "error", err)
		return graph.Document{}, false
	}
	observability.Cache().OnCacheHit(ctx, cache.KeyTypeGalaxy)
	return doc, true
}

// RenderWithCacheInfo produces the artifacts requested by opts and reports
// whether all of them came from the cache. Formats missing from the cache
// are rendered concurrently.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc graph.Document, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	docData, err := graph.Marshal(doc)
	if err != nil {
		return nil, false, fmt.Errorf("serialize document for cache key: %w", err)
	}
	docHash := cache.Hash(docData)

	formats := dedupe(opts.Formats)
	artifacts := make(map[string][]byte, len(formats))
	var missing []string

	for _, format := range formats {
		key := r.Keyer.ArtifactKey(docHash, opts.variant(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err == nil && hit {
			observability.Cache().OnCacheHit(ctx, cache.KeyTypeArtifact)
			artifacts[format] = data
			continue
		}
		observability.Cache().OnCacheMiss(ctx, cache.KeyTypeArtifact)
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	g, err := doc.Galaxy()
	if err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, missing)
	start := time.Now()

	rendered, err := Render(ctx, doc, g, missing, opts)
	hooks.OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		r.store(ctx, cache.KeyTypeArtifact, r.Keyer.ArtifactKey(docHash, opts.variant(format)), data, cache.TTLArtifact)
	}
	return artifacts, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, doc graph.Document, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, doc, opts)
	return artifacts, err
}

// store writes to the cache. Failures are logged, never returned.
func (r *Runner) store(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// Package cache provides the byte cache behind the generation pipeline.
//
// Generated galaxies and rendered artifacts are pure functions of their
// inputs, so they are cached under keys derived from those inputs:
//
//	key := keyer.GalaxyKey(cfg, seed)
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    // reuse the cached document
//	}
//
// Backends:
//   - [FileCache]: one file per key under a directory, for the CLI
//   - [RedisCache]: shared cache for the HTTP service
//   - [NullCache]: caching disabled
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default TTLs.
const (
	TTLGalaxy   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

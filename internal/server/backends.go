package server

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/starmap/pkg/cache"
	"github.com/matzehuels/starmap/pkg/pipeline"
	"github.com/matzehuels/starmap/pkg/store"
)

// cacheScope prefixes keys in a shared Redis.
const cacheScope = "starmap"

// Backends are the runner and archive selected by a Config.
type Backends struct {
	Runner *pipeline.Runner
	Store  store.Store
}

// OpenBackends connects the cache and archive named by cfg. Redis backs
// the cache when RedisURL is set, otherwise caching is disabled. The archive
// is MongoDB, a directory, or memory, in that order of preference.
func OpenBackends(ctx context.Context, cfg Config, logger *log.Logger) (*Backends, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		c     cache.Cache = cache.NewNullCache()
		keyer cache.Keyer
	)
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{URL: cfg.RedisURL})
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		c = rc
		keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), cacheScope)
		logger.Info("cache", "backend", "redis")
	} else {
		logger.Info("cache", "backend", "none")
	}

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	return &Backends{
		Runner: pipeline.NewRunner(c, keyer, logger),
		Store:  st,
	}, nil
}

func openStore(ctx context.Context, cfg Config, logger *log.Logger) (store.Store, error) {
	switch {
	case cfg.MongoURI != "":
		st, err := store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		logger.Info("archive", "backend", "mongo", "database", cfg.MongoDB)
		return st, nil
	case cfg.ArchiveDir != "":
		st, err := store.NewFileStore(cfg.ArchiveDir)
		if err != nil {
			return nil, fmt.Errorf("open archive: %w", err)
		}
		logger.Info("archive", "backend", "file", "dir", st.Path())
		return st, nil
	default:
		logger.Warn("archive is in memory; galaxies are lost on restart")
		return store.NewMemoryStore(), nil
	}
}

// Close releases the cache and the archive.
func (b *Backends) Close(ctx context.Context) error {
	storeErr := b.Store.Close(ctx)
	if err := b.Runner.Close(); err != nil {
		return err
	}
	return storeErr
}

package cache

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Config selects and configures a cache backend.
type Config struct {
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir"`       // file backend
	RedisURL string `toml:"redis_url"` // redis backend
	MongoURI string `toml:"mongo_uri"` // mongo backend
	Prefix   string `toml:"prefix"`    // redis key prefix

	// Namespace scopes every cache key, for any backend. Deployments that
	// share one store but must not share entries set different namespaces.
	Namespace string `toml:"namespace"`
}

// Keyer returns the keyer for cfg: the default keyer, scoped by Namespace
// when one is set.
func (cfg Config) Keyer() Keyer {
	if cfg.Namespace == "" {
		return NewDefaultKeyer()
	}
	return NewScopedKeyer(nil, cfg.Namespace+":")
}

// Open creates the cache described by cfg. An empty backend means none.
func Open(ctx context.Context, cfg Config) (Cache, error) {
	switch cfg.Backend {
	case "", BackendNone:
		return NewNullCache(), nil
	case BackendFile:
		if cfg.Dir == "" {
			return nil, fmt.Errorf("file cache: directory is required")
		}
		return NewFileCache(cfg.Dir)
	case BackendRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("redis cache: redis_url is required")
		}
		return NewRedisCache(ctx, cfg.RedisURL, cfg.Prefix)
	case BackendMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("mongo cache: mongo_uri is required")
		}
		return NewMongoCache(ctx, cfg.MongoURI)
	default:
		return nil, fmt.Errorf("%w: %q (must be none, file, redis or mongo)", ErrUnknownBackend, cfg.Backend)
	}
}

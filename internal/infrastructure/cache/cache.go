// Package cache provides the byte caches that sit in front of conversation reads.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/janhq/agent-memory-store/internal/config"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Store is a key/value byte cache with per-entry expiry.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Type names the backend for metrics labels.
	Type() string
	Close() error
}

// New builds the store selected by CONVERSATION_CACHE_TYPE.
func New(cfg *config.Config, log zerolog.Logger) (Store, error) {
	switch cfg.CacheType {
	case config.CacheRedis:
		return NewRedisCache(cfg.RedisURL, cfg.CachePrefix, log)
	case config.CacheMemory:
		return NewMemoryCache(cfg.CacheSize)
	case config.CacheNone, "":
		return NewNoopCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache type: %s", cfg.CacheType)
	}
}

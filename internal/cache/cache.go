// Package cache holds the Redis-backed rendered-view cache and the
// declared entity→view dependency graph driving its invalidation.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

const keyPrefix = "view:"

type ViewCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zerolog.Logger
}

func NewViewCache(rdb *redis.Client, ttl time.Duration, log *zerolog.Logger) (*ViewCache, error) {
	if rdb == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &ViewCache{rdb: rdb, ttl: ttl, log: log}, nil
}

// Get returns the cached payload for a view path, or ok=false on miss.
func (c *ViewCache) Get(ctx context.Context, path string) ([]byte, bool) {
	val, err := c.rdb.Get(ctx, keyPrefix+path).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("path", path).Msg("view cache read failed")
		}
		return nil, false
	}
	return val, true
}

func (c *ViewCache) Set(ctx context.Context, path string, payload []byte) {
	if err := c.rdb.Set(ctx, keyPrefix+path, payload, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("view cache write failed")
	}
}

// Invalidate drops every view depending on the given entities, resolved
// through the declared dependency graph.
func (c *ViewCache) Invalidate(ctx context.Context, entities ...Entity) {
	paths := PathsFor(entities...)
	if len(paths) == 0 {
		return
	}

	keys := make([]string, len(paths))
	for i, p := range paths {
		keys[i] = keyPrefix + p
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Strs("paths", paths).Msg("view cache invalidation failed")
		return
	}
	c.log.Debug().Strs("paths", paths).Msg("view cache invalidated")
}

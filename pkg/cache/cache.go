/*
 * Copyright 2025 EdgeWatch Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package cache memoizes expensive aggregate reads in Redis. The cache
// sits beside the read path only; a missing or failing backend degrades
// every operation to a miss or no-op and never fails the caller.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edgewatch/edgewatch/pkg/config"
	"github.com/edgewatch/edgewatch/pkg/logger"
)

//go:generate mockgen -destination=mock_cache.go -package=cache github.com/edgewatch/edgewatch/pkg/cache Cache

const (
	scanCount   = 256
	deleteChunk = 128
)

// Cache is a TTL'd byte store. Backend failures are logged and surface
// as misses or no-ops, never as errors.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
	DeletePattern(ctx context.Context, pattern string)
	Enabled() bool
	Close() error
}

// New connects to Redis and returns a live cache, or a disabled no-op
// cache when no address is configured or the ping fails. Callers never
// need to distinguish the two.
func New(ctx context.Context, cfg *config.RedisConfig, log logger.Logger) Cache {
	if cfg == nil || cfg.Addr == "" {
		log.Info().Msg("cache disabled: no redis address configured")

		return &disabledCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).
			Msg("cache disabled: redis unreachable, aggregate reads fall back to direct queries")

		_ = client.Close()

		return &disabledCache{}
	}

	log.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("cache connected")

	return &redisCache{client: client, logger: log}
}

type redisCache struct {
	client *redis.Client
	logger logger.Logger
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}

	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache get failed")

		return nil, false
	}

	return data, true
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn().Err(err).Strs("keys", keys).Msg("cache delete failed")
	}
}

// DeletePattern removes every key matching the glob via SCAN, deleting
// in chunks so a large keyspace never blocks the server the way KEYS
// would.
func (c *redisCache) DeletePattern(ctx context.Context, pattern string) {
	iter := c.client.Scan(ctx, 0, pattern, scanCount).Iterator()

	keys := make([]string, 0, deleteChunk)

	for iter.Next(ctx) {
		keys = append(keys, iter.Val())

		if len(keys) >= deleteChunk {
			c.Delete(ctx, keys...)
			keys = keys[:0]
		}
	}

	if err := iter.Err(); err != nil {
		c.logger.Warn().Err(err).Str("pattern", pattern).Msg("cache pattern scan failed")
	}

	if len(keys) > 0 {
		c.Delete(ctx, keys...)
	}
}

func (c *redisCache) Enabled() bool { return true }

func (c *redisCache) Close() error { return c.client.Close() }

// disabledCache is the degraded mode: every read misses, every write is
// a no-op.
type disabledCache struct{}

func (*disabledCache) Get(context.Context, string) ([]byte, bool)         { return nil, false }
func (*disabledCache) Set(context.Context, string, []byte, time.Duration) {}
func (*disabledCache) Delete(context.Context, ...string)                  {}
func (*disabledCache) DeletePattern(context.Context, string)              {}
func (*disabledCache) Enabled() bool                                      { return false }
func (*disabledCache) Close() error                                       { return nil }

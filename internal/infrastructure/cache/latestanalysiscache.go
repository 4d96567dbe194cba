// Package cache holds Redis-backed read caches. Caching is optional:
// when Redis is disabled the nil implementation is wired in and every
// lookup is a miss.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"triage/internal/shared/logger"
)

// LatestAnalysisCache caches the serialized latest-analysis payload so
// repeated dashboard polls skip the database. A miss returns ("", nil).
type LatestAnalysisCache interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, payload string) error
	Invalidate(ctx context.Context) error
}

const (
	latestAnalysisKey = "analysis:latest"
	latestAnalysisTTL = 5 * time.Minute
)

// RedisLatestAnalysisCache implements LatestAnalysisCache on a plain
// Redis string key with a short TTL. Every analysis run invalidates it.
type RedisLatestAnalysisCache struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisLatestAnalysisCache(client *redis.Client, logger logger.Interface) *RedisLatestAnalysisCache {
	return &RedisLatestAnalysisCache{
		client: client,
		logger: logger,
	}
}

func (c *RedisLatestAnalysisCache) Get(ctx context.Context) (string, error) {
	payload, err := c.client.Get(ctx, latestAnalysisKey).Result()
	if err == redis.Nil {
		return "", nil // Cache miss
	}
	if err != nil {
		return "", fmt.Errorf("failed to get latest analysis from cache: %w", err)
	}
	return payload, nil
}

func (c *RedisLatestAnalysisCache) Set(ctx context.Context, payload string) error {
	if err := c.client.Set(ctx, latestAnalysisKey, payload, latestAnalysisTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache latest analysis: %w", err)
	}
	c.logger.Debugw("latest analysis cached", "ttl", latestAnalysisTTL)
	return nil
}

func (c *RedisLatestAnalysisCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, latestAnalysisKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate latest analysis cache: %w", err)
	}
	c.logger.Debugw("latest analysis cache invalidated")
	return nil
}

// NoopLatestAnalysisCache is wired in when Redis is disabled.
type NoopLatestAnalysisCache struct{}

func NewNoopLatestAnalysisCache() *NoopLatestAnalysisCache {
	return &NoopLatestAnalysisCache{}
}

func (c *NoopLatestAnalysisCache) Get(ctx context.Context) (string, error)     { return "", nil }
func (c *NoopLatestAnalysisCache) Set(ctx context.Context, payload string) error { return nil }
func (c *NoopLatestAnalysisCache) Invalidate(ctx context.Context) error          { return nil }

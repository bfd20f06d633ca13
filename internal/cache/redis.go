package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"product-insights/internal/config"
	"product-insights/internal/model"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// SummaryKey is the Redis key holding the serialised summary.
const SummaryKey = "product-insights:summary"

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, logger zerolog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("redis connection established")

	return client, nil
}

// redisCache implements SummaryCache on Redis.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisCache creates a Redis-backed SummaryCache whose entries expire after ttl.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger zerolog.Logger) SummaryCache {
	return &redisCache{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "summary-cache").Logger(),
	}
}

// Get returns the cached summary.
func (c *redisCache) Get(ctx context.Context) ([]model.CategorySummary, bool, error) {
	data, err := c.client.Get(ctx, SummaryKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.Debug().Msg("summary cache miss")
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read summary cache: %w", err)
	}

	var summaries []model.CategorySummary
	if err := json.Unmarshal(data, &summaries); err != nil {
		return nil, false, fmt.Errorf("failed to decode summary cache: %w", err)
	}

	c.logger.Debug().Int("categories", len(summaries)).Msg("summary cache hit")
	return summaries, true, nil
}

// Set stores summaries with the configured TTL.
func (c *redisCache) Set(ctx context.Context, summaries []model.CategorySummary) error {
	if summaries == nil {
		summaries = []model.CategorySummary{}
	}

	data, err := json.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("failed to encode summary cache: %w", err)
	}

	if err := c.client.Set(ctx, SummaryKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write summary cache: %w", err)
	}
	return nil
}

// Invalidate deletes the cached summary.
func (c *redisCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, SummaryKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate summary cache: %w", err)
	}
	c.logger.Debug().Msg("summary cache invalidated")
	return nil
}

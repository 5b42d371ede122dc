// Package cache keeps published blocks in Redis so reader requests by slug
// skip the database. Admin writes invalidate the affected slugs.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nenadmarinkovic/sprachenwald/internal/config"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

const keyPrefix = "sw:block:"

// BlockKey returns the Redis key of a block slug.
func BlockKey(slug string) string {
	return keyPrefix + slug
}

// Redis is a block cache backed by a Redis server.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// NewRedis connects to Redis and verifies the connection.
func NewRedis(ctx context.Context, cfg config.RedisConfig, log *slog.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}

	return &Redis{client: client, ttl: cfg.BlockTTL, log: log.With("component", "block_cache")}, nil
}

// GetBlock returns the cached block. A miss or an undecodable entry reports
// ok=false with a nil error.
func (c *Redis) GetBlock(ctx context.Context, slug string) (domain.Block, bool, error) {
	raw, err := c.client.Get(ctx, BlockKey(slug)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Block{}, false, nil
	}
	if err != nil {
		return domain.Block{}, false, fmt.Errorf("get cached block %s: %w", slug, err)
	}

	var b domain.Block
	if err := json.Unmarshal(raw, &b); err != nil {
		c.log.WarnContext(ctx, "dropping undecodable cache entry",
			slog.String("slug", slug),
			slog.String("error", err.Error()),
		)
		_ = c.client.Del(ctx, BlockKey(slug)).Err()
		return domain.Block{}, false, nil
	}
	return b, true, nil
}

// SetBlock stores a block under its slug.
func (c *Redis) SetBlock(ctx context.Context, b domain.Block) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode block %s: %w", b.Slug, err)
	}
	if err := c.client.Set(ctx, BlockKey(b.Slug), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache block %s: %w", b.Slug, err)
	}
	return nil
}

// Invalidate removes the given slugs.
func (c *Redis) Invalidate(ctx context.Context, slugs ...string) error {
	if len(slugs) == 0 {
		return nil
	}
	keys := make([]string, len(slugs))
	for i, s := range slugs {
		keys[i] = BlockKey(s)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate blocks: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (c *Redis) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the client.
func (c *Redis) Close() error {
	return c.client.Close()
}

// Noop is used when no Redis address is configured: every read misses.
type Noop struct{}

func (Noop) GetBlock(context.Context, string) (domain.Block, bool, error) {
	return domain.Block{}, false, nil
}

func (Noop) SetBlock(context.Context, domain.Block) error { return nil }

func (Noop) Invalidate(context.Context, ...string) error { return nil }

func (Noop) Ping(context.Context) error { return nil }

func (Noop) Close() error { return nil }

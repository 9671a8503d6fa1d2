package redis

import (
	"context"
	"fmt"
	"hive-server/internal/config"
	"hive-server/internal/observability"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps the Redis client with observability. A nil *Client is valid
// and reports IsEnabled() == false.
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client, or returns nil when Redis is disabled
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info(ctx, "successfully connected to Redis",
		observability.Field{Key: "addr", Value: cfg.Addr()},
		observability.Field{Key: "db", Value: cfg.DB},
	)

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

var errNotInitialized = fmt.Errorf("Redis client not initialized")

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// IsEnabled returns whether Redis is enabled
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

// ReplaceSortedSet atomically swaps the content of a sorted set and sets its TTL
func (c *Client) ReplaceSortedSet(ctx context.Context, key string, members []redis.Z, ttl time.Duration) error {
	if !c.IsEnabled() {
		return errNotInitialized
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(members) > 0 {
			pipe.ZAdd(ctx, key, members...)
			if ttl > 0 {
				pipe.Expire(ctx, key, ttl)
			}
		}
		return nil
	})
	return err
}

// ZRange returns members in a sorted set by index range (ascending)
func (c *Client) ZRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	if !c.IsEnabled() {
		return nil, errNotInitialized
	}
	return c.client.ZRange(ctx, key, start, stop).Result()
}

// ZCard returns the number of members in a sorted set
func (c *Client) ZCard(ctx context.Context, key string) (int64, error) {
	if !c.IsEnabled() {
		return 0, errNotInitialized
	}
	return c.client.ZCard(ctx, key).Result()
}

// Del deletes keys
func (c *Client) Del(ctx context.Context, keys ...string) error {
	if !c.IsEnabled() {
		return errNotInitialized
	}
	return c.client.Del(ctx, keys...).Err()
}

// SlidingWindowHit records one hit in a sliding window sorted set and returns
// the number of hits inside the window before this one, plus the oldest hit.
func (c *Client) SlidingWindowHit(ctx context.Context, key string, now time.Time, window time.Duration) (int64, time.Time, error) {
	if !c.IsEnabled() {
		return 0, time.Time{}, errNotInitialized
	}

	nowMs := now.UnixMilli()
	windowStartMs := now.Add(-window).UnixMilli()

	var card *redis.IntCmd
	var oldest *redis.ZSliceCmd
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStartMs))
		card = pipe.ZCard(ctx, key)
		oldest = pipe.ZRangeWithScores(ctx, key, 0, 0)
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowMs), Member: fmt.Sprintf("%d-%d", nowMs, now.Nanosecond())})
		pipe.Expire(ctx, key, 2*window)
		return nil
	})
	if err != nil {
		return 0, time.Time{}, err
	}

	oldestAt := now
	if zs := oldest.Val(); len(zs) > 0 {
		oldestAt = time.UnixMilli(int64(zs[0].Score))
	}
	return card.Val(), oldestAt, nil
}

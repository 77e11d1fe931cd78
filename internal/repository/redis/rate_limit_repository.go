package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitRepository implements a fixed-window counter per key. INCR and
// EXPIRE run in one pipeline so the window always gets a TTL, even when two
// first hits race.
type RateLimitRepository struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimitRepository(client *redis.Client, limit int, window time.Duration) *RateLimitRepository {
	return &RateLimitRepository{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (r *RateLimitRepository) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := fmt.Sprintf("ratelimit:%s:%d", key, time.Now().Unix()/int64(r.window.Seconds()))

	pipe := r.client.TxPipeline()
	count := pipe.Incr(ctx, windowKey)
	pipe.Expire(ctx, windowKey, r.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to count rate limit hit: %w", err)
	}

	return count.Val() <= int64(r.limit), nil
}

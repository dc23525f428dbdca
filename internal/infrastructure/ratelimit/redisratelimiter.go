package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter is a sliding-window limiter backed by one sorted set per
// key. Denied requests are not recorded.
type RedisRateLimiter struct {
	client *redis.Client
	config RateLimitConfig
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client, config RateLimitConfig) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		config: config,
		now:    time.Now,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (Result, error) {
	res := Result{Limit: l.config.Requests}
	if l.config.Requests <= 0 || l.config.Window <= 0 {
		res.Allowed = true
		return res, nil
	}

	now := l.now()
	redisKey := l.getKey(key)
	windowStart := now.Add(-l.config.Window).UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	zcard := pipe.ZCard(ctx, redisKey)
	oldest := pipe.ZRangeWithScores(ctx, redisKey, 0, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return res, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	count := int(zcard.Val())
	if count >= l.config.Requests {
		if entries := oldest.Val(); len(entries) > 0 {
			oldestAt := time.Unix(0, int64(entries[0].Score))
			res.RetryAfter = oldestAt.Add(l.config.Window).Sub(now)
		}
		if res.RetryAfter <= 0 {
			res.RetryAfter = time.Second
		}
		return res, nil
	}

	member := strconv.FormatInt(now.UnixNano(), 10)
	pipe = l.client.Pipeline()
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: member})
	pipe.Expire(ctx, redisKey, l.config.Window+time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return res, fmt.Errorf("failed to record request: %w", err)
	}

	res.Allowed = true
	res.Remaining = l.config.Requests - count - 1
	return res, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.getKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", l.getKey(key), err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(identifier string) string {
	return fmt.Sprintf("ratelimit:%s:%s", identifier, l.config.Window.String())
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/shared/logger"
)

const (
	ticketKeyPrefix   = "ticket:detail:"
	defaultTicketTTL  = 10 * time.Minute
	ticketTTLJitterPc = 20 // TTL spread: +0..20% (anti-stampede)

	// tombstone marks a ticket that was just written. While it lives, fills
	// from reads that started before the write cannot land.
	tombstone    = "-"
	tombstoneTTL = 5 * time.Second
)

// RedisTicketCache keeps rendered ticket DTOs as JSON strings.
type RedisTicketCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisTicketCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisTicketCache {
	if ttl <= 0 {
		ttl = defaultTicketTTL
	}
	return &RedisTicketCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisTicketCache) key(id uint) string {
	return fmt.Sprintf("%s%d", ticketKeyPrefix, id)
}

func (c *RedisTicketCache) jitteredTTL() time.Duration {
	spread := int64(c.ttl) * ticketTTLJitterPc / 100
	if spread <= 0 {
		return c.ttl
	}
	return c.ttl + time.Duration(rand.Int64N(spread))
}

// Get returns nil, nil on a cache miss or a tombstone.
func (c *RedisTicketCache) Get(ctx context.Context, id uint) (*dto.TicketDTO, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket from cache: %w", err)
	}

	if string(raw) == tombstone {
		return nil, nil
	}

	var t dto.TicketDTO
	if err := json.Unmarshal(raw, &t); err != nil {
		// Corrupt entry: drop it so the next read repopulates.
		c.logger.Warnw("discarding undecodable cached ticket", "ticket_id", id, "error", err)
		_ = c.client.Del(ctx, c.key(id)).Err()
		return nil, nil
	}
	return &t, nil
}

func (c *RedisTicketCache) Set(ctx context.Context, t *dto.TicketDTO) error {
	if t == nil || t.ID == 0 {
		return fmt.Errorf("cannot cache ticket without ID")
	}
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode ticket: %w", err)
	}
	// NX: an existing entry or tombstone wins over this fill.
	if err := c.client.SetNX(ctx, c.key(t.ID), raw, c.jitteredTTL()).Err(); err != nil {
		return fmt.Errorf("failed to cache ticket: %w", err)
	}
	return nil
}

// Invalidate replaces the entry with a short-lived tombstone instead of
// deleting it, so a read that fetched the old row before the write cannot
// cache it afterwards.
func (c *RedisTicketCache) Invalidate(ctx context.Context, id uint) error {
	if err := c.client.Set(ctx, c.key(id), tombstone, tombstoneTTL).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached ticket: %w", err)
	}
	return nil
}

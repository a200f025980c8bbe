// Package ordercache keeps serialized order views in Redis so repeated single-order
// reads skip the database. Entries expire after a TTL and are dropped when an order
// changes status.
//
// Invalidate also leaves a short-lived marker for the order. While the marker lives,
// Set is a no-op, so a reader that loaded the order before a committed change cannot
// write its stale view back after the change invalidated it.
package ordercache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix        = "shop:order:"
	invalidatedInfix = "invalidated:"
)

const (
	// DefaultTTL is used when the cache is created with a non-positive TTL.
	DefaultTTL = 5 * time.Minute

	// DefaultInvalidationHold bounds how long a reader may take between its database
	// read and its fill for the fill to still be rejected after an invalidation.
	DefaultInvalidationHold = 30 * time.Second
)

// fillScript sets KEYS[1] unless the invalidation marker KEYS[2] exists.
var fillScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[2]) == 1 then
	return 0
end
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
return 1
`)

// RedisOrderCache implements queries.OrderViewCache and commands.OrderCacheInvalidator.
type RedisOrderCache struct {
	client redis.Cmdable
	ttl    time.Duration
	hold   time.Duration
}

// Option configures a RedisOrderCache.
type Option func(*RedisOrderCache)

// WithInvalidationHold sets how long fills are rejected after Invalidate.
// Non-positive values keep DefaultInvalidationHold.
func WithInvalidationHold(hold time.Duration) Option {
	return func(c *RedisOrderCache) {
		if hold > 0 {
			c.hold = hold
		}
	}
}

func NewRedisOrderCache(client redis.Cmdable, ttl time.Duration, opts ...Option) *RedisOrderCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &RedisOrderCache{client: client, ttl: ttl, hold: DefaultInvalidationHold}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func key(orderID kernel.UUID) string {
	return keyPrefix + orderID.String()
}

func invalidatedKey(orderID kernel.UUID) string {
	return keyPrefix + invalidatedInfix + orderID.String()
}

// Get returns nil, nil on a miss.
func (c *RedisOrderCache) Get(ctx context.Context, orderID kernel.UUID) (*queries.OrderView, error) {
	data, err := c.client.Get(ctx, key(orderID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var view queries.OrderView
	if err = json.Unmarshal(data, &view); err != nil {
		return nil, fmt.Errorf("decode cached order %s: %w", orderID.String(), err)
	}
	return &view, nil
}

// Set stores view unless the order was invalidated within the hold window.
// A skipped fill is not an error.
func (c *RedisOrderCache) Set(ctx context.Context, view queries.OrderView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return err
	}
	keys := []string{key(view.ID), invalidatedKey(view.ID)}
	return fillScript.Run(ctx, c.client, keys, data, c.ttl.Milliseconds()).Err()
}

// Invalidate drops the cached view and blocks fills for the hold window.
func (c *RedisOrderCache) Invalidate(ctx context.Context, orderID kernel.UUID) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key(orderID))
		pipe.Set(ctx, invalidatedKey(orderID), 1, c.hold)
		return nil
	})
	return err
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"portfolioAPI/internal/metrics"
)

// EntityCache stores values of one type as JSON under prefixed keys.
// Every failure is logged and absorbed: reads degrade to misses and
// writes become no-ops.
type EntityCache[T any] struct {
	name   string
	store  Store
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

func NewEntityCache[T any](store Store, name, prefix string, ttl time.Duration, logger *slog.Logger) *EntityCache[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntityCache[T]{
		name:   name,
		store:  store,
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *EntityCache[T]) Key(suffix string) string {
	return c.prefix + suffix
}

func (c *EntityCache[T]) Get(ctx context.Context, suffix string) (T, bool) {
	var zero T
	key := c.Key(suffix)

	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrMiss) {
			metrics.CacheRequests.WithLabelValues(c.name, "miss").Inc()
		} else {
			metrics.CacheRequests.WithLabelValues(c.name, "error").Inc()
			c.logger.Warn("cache get failed", slog.String("key", key), slog.Any("err", err))
		}
		return zero, false
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		metrics.CacheRequests.WithLabelValues(c.name, "error").Inc()
		c.logger.Warn("cache decode failed", slog.String("key", key), slog.Any("err", err))
		return zero, false
	}

	metrics.CacheRequests.WithLabelValues(c.name, "hit").Inc()
	return value, true
}

func (c *EntityCache[T]) Put(ctx context.Context, suffix string, value T) {
	key := c.Key(suffix)

	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache encode failed", slog.String("key", key), slog.Any("err", err))
		return
	}
	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		c.logger.Warn("cache set failed", slog.String("key", key), slog.Any("err", err))
	}
}

func (c *EntityCache[T]) Delete(ctx context.Context, suffixes ...string) {
	keys := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		keys = append(keys, c.Key(s))
	}
	if err := c.store.Delete(ctx, keys...); err != nil {
		c.logger.Warn("cache delete failed", slog.Any("keys", keys), slog.Any("err", err))
	}
}

// Increment bumps a counter stored next to the entity keys. It returns 0
// when the store is unavailable.
func (c *EntityCache[T]) Increment(ctx context.Context, suffix string) int64 {
	key := c.Key(suffix)

	n, err := c.store.Incr(ctx, key, c.ttl)
	if err != nil {
		c.logger.Warn("cache incr failed", slog.String("key", key), slog.Any("err", err))
		return 0
	}
	return n
}

// GetOrLoad serves from cache, otherwise calls load and populates the cache
// on success. Loader errors are returned untouched.
func (c *EntityCache[T]) GetOrLoad(ctx context.Context, suffix string, load func(context.Context) (T, error)) (T, error) {
	if v, ok := c.Get(ctx, suffix); ok {
		return v, nil
	}

	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	c.Put(ctx, suffix, v)
	return v, nil
}

package cache

import (
	"context"
	"time"
)

// NullCache backs --no-cache: every parse, layout and render lookup misses,
// so the runner recomputes each stage and writes are discarded.
type NullCache struct{}

// NewNullCache returns the cache used when caching is switched off.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get reports a miss for every key.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards data.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)

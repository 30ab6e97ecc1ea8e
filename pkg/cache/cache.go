// Package cache stores parsed trees, layouts and rendered artifacts.
//
// Every pipeline stage is content-addressed: a [Keyer] turns the stage input
// (a document hash, a tree hash, a layout hash) plus the stage options into a
// key, and a [Cache] maps keys to bytes with an optional TTL.
//
// Implementations:
//
//   - [FileCache] for the CLI, under the XDG cache directory
//   - [LRUCache] for a single server process
//   - [RedisCache] for servers sharing a cache
//   - [NullCache] to disable caching
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. A ttl of zero means no expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default TTLs per stage.
const (
	TreeTTL     = 24 * time.Hour
	LayoutTTL   = 7 * 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// Package cache provides response cache backends for the spiget client.
//
// Two layers exist:
//
//   - [Memo] is the in-process memo owned by the HTTP client. It holds
//     decoded response objects, never evicts, and hands back the same
//     pointer for identical requests.
//   - [Cache] is an optional byte-level second tier ([FileCache],
//     [RedisCache], or [NullCache]) that survives the process and honours
//     a TTL per entry.
//
// Keys for the second tier are produced by a [Keyer] so that several base
// URLs or users can share one backend without collisions.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-level key/value store with per-entry TTL.
//
// Get reports (nil, false, nil) on a miss; an error means the backend itself
// failed. A ttl of 0 passed to Set means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

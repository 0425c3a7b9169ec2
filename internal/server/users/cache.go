package users

import (
	"context"
	"time"
)

// Cache is a best-effort key/value side-store for user lookups.
// A ttl of zero means no expiry.
type Cache interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Get returns shared.ErrorNotFound on a cache miss.
	Get(ctx context.Context, key string) (string, error)
}

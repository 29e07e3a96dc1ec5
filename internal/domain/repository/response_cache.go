// Package repository defines the interfaces for the persistence and caching layer.
// These interfaces act as a contract between the usecase layer and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"moodmap/internal/errors"
)

// ErrCacheMiss is returned by ResponseCache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// ResponseCache stores serialized upstream responses with a time-to-live.
type ResponseCache interface {
	// Get returns the stored value or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key for ttl. A non-positive ttl is a no-op.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

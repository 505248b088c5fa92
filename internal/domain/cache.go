package domain

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache implementations when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Cache abstracts the external cache used for rendered documents.
// Implementations translate their own miss sentinel to ErrCacheMiss.
type Cache interface {
	// Get retrieves the value for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key with the given expiration.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes key from the cache.
	Delete(ctx context.Context, key string) error

	// Ping checks cache backend health.
	Ping(ctx context.Context) error
}

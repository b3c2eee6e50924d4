package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Store.Get when the key is absent or expired. Any
// other error from a Store means the store itself failed; callers treat that
// the same as a miss but log it.
var ErrMiss = errors.New("cache: miss")

// Store is the key-value boundary of the cache layer. The in-process
// implementation is TTLStore; tests substitute failing or recording fakes.
// A ttl of zero or less means the entry never expires.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

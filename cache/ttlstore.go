package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// TTLStore implements Store on top of an in-process ttlcache. Entries are
// evicted by a background loop started in NewTTLStore; a hit never extends
// an entry's lifetime, so TTLs behave like the absolute expiries the
// invalidation layer assumes.
type TTLStore struct {
	c *ttlcache.Cache[string, []byte]
}

// NewTTLStore creates a store and starts its eviction loop. Call Stop on
// shutdown.
func NewTTLStore() *TTLStore {
	c := ttlcache.New[string, []byte](
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)
	go c.Start() // starts the automatic expired-item eviction loop
	return &TTLStore{c: c}
}

func (s *TTLStore) Get(_ context.Context, key string) ([]byte, error) {
	item := s.c.Get(key)
	if item == nil {
		return nil, ErrMiss
	}
	return item.Value(), nil
}

func (s *TTLStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = ttlcache.NoTTL
	}
	s.c.Set(key, value, ttl)
	return nil
}

func (s *TTLStore) Delete(_ context.Context, key string) error {
	s.c.Delete(key)
	return nil
}

// Stop terminates the eviction loop.
func (s *TTLStore) Stop() {
	s.c.Stop()
}

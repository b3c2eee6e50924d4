package cache_test

import (
	"context"
	"errors"
	"time"

	"github.com/lingvoapp/lingvo-api/cache"
)

// memStore is a minimal in-memory Store that records every operation so specs
// can assert on the exact keys touched. TTLs are remembered but never
// enforced; expiry behaviour is covered by the TTLStore specs.
type memStore struct {
	data    map[string][]byte
	ttls    map[string]time.Duration
	gets    []string
	sets    []string
	deletes []string
}

func newMemStore() *memStore {
	return &memStore{
		data: make(map[string][]byte),
		ttls: make(map[string]time.Duration),
	}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	s.gets = append(s.gets, key)
	v, ok := s.data[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return v, nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.sets = append(s.sets, key)
	s.data[key] = value
	s.ttls[key] = ttl
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.deletes = append(s.deletes, key)
	delete(s.data, key)
	return nil
}

// brokenStore fails every operation, standing in for an unreachable cache.
type brokenStore struct{}

var errStoreDown = errors.New("store down")

func (brokenStore) Get(context.Context, string) ([]byte, error) { return nil, errStoreDown }
func (brokenStore) Set(context.Context, string, []byte, time.Duration) error {
	return errStoreDown
}
func (brokenStore) Delete(context.Context, string) error { return errStoreDown }

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"
)

// GetOrCompute is the read-through accessor. It tries the store first; on a
// hit the cached bytes are decoded and returned. On a miss, a store failure,
// or a decode failure it falls back to compute, writes the result back
// best-effort, and returns the in-memory value directly. A broken store
// therefore degrades latency, never availability; only compute errors reach
// the caller.
func GetOrCompute[T any](ctx context.Context, store Store, key string, ttl time.Duration, compute func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	raw, err := store.Get(ctx, key)
	if err == nil {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		// Undecodable entry. Treat as a miss and overwrite below.
		slog.Warn("cache entry corrupt, recomputing", "key", key)
	} else if !errors.Is(err, ErrMiss) {
		slog.Warn("cache get failed, falling back to source", "key", key, "error", err)
	}

	value, err := compute(ctx)
	if err != nil {
		return zero, err
	}

	if raw, err := json.Marshal(value); err != nil {
		slog.Warn("cache encode failed", "key", key, "error", err)
	} else if err := store.Set(ctx, key, raw, ttl); err != nil {
		slog.Warn("cache set failed", "key", key, "error", err)
	}

	return value, nil
}

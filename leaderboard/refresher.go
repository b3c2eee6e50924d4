package leaderboard

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/lingvoapp/lingvo-api/cache"
	"github.com/lingvoapp/lingvo-api/ent"
)

const defaultRefreshInterval = 3 * time.Minute

// Refresher rewrites the cached leaderboard snapshot on a fixed interval,
// independent of read traffic. Request handlers racing a refresher run both
// write freshly computed snapshots, so last-writer-wins is harmless.
type Refresher struct {
	db       *ent.Client
	store    cache.Store
	interval time.Duration

	// onRefresh, when set, is called after each successful run with the
	// snapshot just written. Used to broadcast refresh events to websocket
	// subscribers.
	onRefresh func(Snapshot)

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewRefresher creates a refresher. Call Start to begin the loop.
func NewRefresher(db *ent.Client, store cache.Store, interval time.Duration, onRefresh func(Snapshot)) *Refresher {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &Refresher{
		db:        db,
		store:     store,
		interval:  interval,
		onRefresh: onRefresh,
	}
}

// Start begins the refresh loop: an immediate run so the cache is warm before
// the first request, then one run per interval. Calling Start while already
// running is a no-op.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true

	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)

		r.runOnce(ctx)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.runOnce(ctx)
			}
		}
	}(r.done)
}

// Stop cancels the loop and waits for an in-flight run to finish. Stopping a
// stopped refresher is a no-op.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}
	r.cancel()
	<-r.done
	r.running = false
}

// runOnce executes one recompute-and-overwrite cycle. Failures and panics are
// logged and dropped so one bad run never kills the loop.
func (r *Refresher) runOnce(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("leaderboard refresh panicked", "panic", rec)
		}
	}()

	snap, err := Build(ctx, r.db, r.interval, time.Now().UTC())
	if err != nil {
		slog.Error("leaderboard refresh failed", "error", err)
		return
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		slog.Error("leaderboard snapshot encode failed", "error", err)
		return
	}
	// No TTL: this view is kept fresh by the loop and by progress
	// invalidation, never by expiry.
	if err := r.store.Set(ctx, cache.KeyLeaderboard, raw, 0); err != nil {
		slog.Warn("leaderboard snapshot write failed", "error", err)
		return
	}

	slog.Info("leaderboard refreshed", "users", snap.TotalUsers, "next_update", snap.NextUpdate)
	if r.onRefresh != nil {
		r.onRefresh(snap)
	}
}

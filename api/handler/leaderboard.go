package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lingvoapp/lingvo-api/cache"
	"github.com/lingvoapp/lingvo-api/ent"
	"github.com/lingvoapp/lingvo-api/leaderboard"
)

// LeaderboardHandler serves the ranked snapshot. The refresher keeps the
// cached copy warm; this handler only recomputes when a progress submission
// dropped it between refresher runs.
type LeaderboardHandler struct {
	db       *ent.Client
	store    cache.Store
	interval time.Duration
}

func NewLeaderboardHandler(db *ent.Client, store cache.Store, interval time.Duration) *LeaderboardHandler {
	return &LeaderboardHandler{db: db, store: store, interval: interval}
}

// Get returns the full ranking plus the caller's own position. Users without
// progress rows are absent from the list and ranked one past the end.
func (h *LeaderboardHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	user := currentUser(c)

	snap, err := cache.GetOrCompute(ctx, h.store, cache.KeyLeaderboard, 0, func(ctx context.Context) (leaderboard.Snapshot, error) {
		return leaderboard.Build(ctx, h.db, h.interval, time.Now().UTC())
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rank, points := snap.Rank(user.ID)
	c.JSON(http.StatusOK, gin.H{
		"leaderboard":  snap.Entries,
		"last_updated": snap.LastUpdated,
		"next_update":  snap.NextUpdate,
		"total_users":  snap.TotalUsers,
		"current_user": gin.H{
			"rank":         rank,
			"total_points": points,
		},
	})
}

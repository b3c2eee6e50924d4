package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lingvoapp/lingvo-api/cache"
	"github.com/lingvoapp/lingvo-api/ent"
	entprogress "github.com/lingvoapp/lingvo-api/ent/progress"
)

// firstTryBonusThreshold is the score at which a first attempt earns the
// full bonus instead of the raw score.
const (
	firstTryBonusThreshold = 90
	firstTryBonusPoints    = 100
)

// ProgressHandler records quiz results and awards points. Points feed the
// ranked snapshot, so every submission that changes them drops the cached
// leaderboard.
type ProgressHandler struct {
	db  *ent.Client
	inv *cache.Invalidator
}

func NewProgressHandler(db *ent.Client, inv *cache.Invalidator) *ProgressHandler {
	return &ProgressHandler{db: db, inv: inv}
}

type ProgressView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	PackID      uuid.UUID `json:"pack_id"`
	BestScore   int       `json:"best_score"`
	TotalPoints int       `json:"total_points"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newProgressView(p *ent.Progress) ProgressView {
	return ProgressView{
		ID:          p.ID,
		UserID:      p.UserID,
		PackID:      p.PackID,
		BestScore:   p.BestScore,
		TotalPoints: p.TotalPoints,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type submitProgressRequest struct {
	PackID uuid.UUID `json:"pack_id" binding:"required"`
	Score  *int      `json:"score" binding:"required"`
}

// Submit records one quiz attempt. A first attempt at 90 or above earns the
// full bonus; after that only improvements over the best score earn points,
// one point per percent improved.
func (h *ProgressHandler) Submit(c *gin.Context) {
	var req submitProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	score := *req.Score
	if score < 0 || score > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "score must be between 0 and 100"})
		return
	}

	ctx := c.Request.Context()
	user := currentUser(c)

	if _, err := h.db.Pack.Get(ctx, req.PackID); err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pack not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	prev, err := h.db.Progress.Query().
		Where(entprogress.UserID(user.ID), entprogress.PackID(req.PackID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var (
		row    *ent.Progress
		earned int
	)
	if prev == nil {
		if score >= firstTryBonusThreshold {
			earned = firstTryBonusPoints
		} else {
			earned = score
		}
		row, err = h.db.Progress.Create().
			SetUserID(user.ID).
			SetPackID(req.PackID).
			SetBestScore(score).
			SetTotalPoints(earned).
			Save(ctx)
	} else {
		if score > prev.BestScore {
			earned = score - prev.BestScore
		}
		upd := prev.Update().SetTotalPoints(prev.TotalPoints + earned)
		if score > prev.BestScore {
			upd.SetBestScore(score)
		}
		row, err = upd.Save(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if earned > 0 {
		h.inv.Progress(ctx)
	}

	c.JSON(http.StatusOK, gin.H{
		"progress":      newProgressView(row),
		"points_earned": earned,
	})
}

// List returns the authenticated user's progress across all packs.
func (h *ProgressHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	user := currentUser(c)

	rows, err := h.db.Progress.Query().
		Where(entprogress.UserID(user.ID)).
		Order(ent.Asc(entprogress.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]ProgressView, 0, len(rows))
	total := 0
	for _, p := range rows {
		views = append(views, newProgressView(p))
		total += p.TotalPoints
	}

	c.JSON(http.StatusOK, gin.H{
		"progress":     views,
		"total_points": total,
	})
}

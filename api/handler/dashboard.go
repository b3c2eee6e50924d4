package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lingvoapp/lingvo-api/cache"
	"github.com/lingvoapp/lingvo-api/ent"
	entlesson "github.com/lingvoapp/lingvo-api/ent/lesson"
	entprogress "github.com/lingvoapp/lingvo-api/ent/progress"
	"github.com/lingvoapp/lingvo-api/leaderboard"
)

// DashboardHandler serves the mobile home screen aggregate: the user's
// points, where they are in the course, and their leaderboard position.
type DashboardHandler struct {
	db       *ent.Client
	store    cache.Store
	interval time.Duration
}

func NewDashboardHandler(db *ent.Client, store cache.Store, interval time.Duration) *DashboardHandler {
	return &DashboardHandler{db: db, store: store, interval: interval}
}

type currentLessonView struct {
	LessonView
	CompletionPercentage float64 `json:"completion_percentage"`
}

// Home returns the dashboard aggregate. The current lesson is the first one,
// in course order, whose packs the user has not all finished at 100. Lessons
// without packs are skipped; a fully finished course reports the last lesson
// at 100 percent.
func (h *DashboardHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()
	user := currentUser(c)

	rows, err := h.db.Progress.Query().
		Where(entprogress.UserID(user.ID)).
		All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totalPoints := 0
	bestByPack := map[string]int{}
	for _, p := range rows {
		totalPoints += p.TotalPoints
		bestByPack[p.PackID.String()] = p.BestScore
	}

	lessons, err := h.db.Lesson.Query().
		WithPacks().
		Order(ent.Asc(entlesson.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var current *currentLessonView
	var lastWithPacks *ent.Lesson
	for _, l := range lessons {
		if len(l.Edges.Packs) == 0 {
			continue
		}
		lastWithPacks = l

		sum := 0
		for _, p := range l.Edges.Packs {
			sum += bestByPack[p.ID.String()]
		}
		avg := float64(sum) / float64(len(l.Edges.Packs))
		if avg < 100 {
			current = &currentLessonView{LessonView: newLessonView(l), CompletionPercentage: avg}
			break
		}
	}
	if current == nil && lastWithPacks != nil {
		current = &currentLessonView{LessonView: newLessonView(lastWithPacks), CompletionPercentage: 100.0}
	}

	snap, err := cache.GetOrCompute(ctx, h.store, cache.KeyLeaderboard, 0, func(ctx context.Context) (leaderboard.Snapshot, error) {
		return leaderboard.Build(ctx, h.db, h.interval, time.Now().UTC())
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	rank, _ := snap.Rank(user.ID)

	resp := gin.H{
		"total_points":         totalPoints,
		"leaderboard_position": rank,
		"current_lesson":       nil,
	}
	if current != nil {
		resp["current_lesson"] = current
	}
	c.JSON(http.StatusOK, resp)
}

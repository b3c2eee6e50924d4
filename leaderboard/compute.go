package leaderboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lingvoapp/lingvo-api/ent"
	"github.com/lingvoapp/lingvo-api/ent/progress"
	"github.com/lingvoapp/lingvo-api/ent/user"
)

// Build recomputes the full snapshot from progress rows: total points per
// user, ordered by points descending then user id ascending, ranks assigned
// by position. Only users with at least one progress row appear.
func Build(ctx context.Context, db *ent.Client, interval time.Duration, now time.Time) (Snapshot, error) {
	var totals []struct {
		UserID uuid.UUID `json:"user_id"`
		Sum    int       `json:"sum"`
	}
	err := db.Progress.Query().
		GroupBy(progress.FieldUserID).
		Aggregate(ent.Sum(progress.FieldTotalPoints)).
		Scan(ctx, &totals)
	if err != nil {
		return Snapshot{}, fmt.Errorf("aggregate progress: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(totals))
	points := make(map[uuid.UUID]int, len(totals))
	for _, t := range totals {
		ids = append(ids, t.UserID)
		points[t.UserID] = t.Sum
	}

	users, err := db.User.Query().
		Where(user.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load ranked users: %w", err)
	}

	entries := make([]Entry, 0, len(users))
	for _, u := range users {
		entries = append(entries, Entry{
			UserID:      u.ID,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			AvatarURL:   u.AvatarURL,
			TotalPoints: points[u.ID],
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].UserID.String() < entries[j].UserID.String()
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return Snapshot{
		Entries:     entries,
		LastUpdated: now,
		NextUpdate:  NextBoundary(now, interval),
		TotalUsers:  len(entries),
	}, nil
}

package leaderboard

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one ranked row. Rank is 1-based with no gaps; ties on points are
// broken by user id ascending so recomputation is deterministic.
type Entry struct {
	UserID      uuid.UUID `json:"user_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name,omitempty"`
	AvatarURL   *string   `json:"avatar_url"`
	TotalPoints int       `json:"total_points"`
	Rank        int       `json:"rank"`
}

// Snapshot is the whole leaderboard as written to the cache in one set.
// It is replaced wholesale by the refresher and never partially updated.
type Snapshot struct {
	Entries     []Entry   `json:"leaderboard"`
	LastUpdated time.Time `json:"last_updated"`
	NextUpdate  time.Time `json:"next_update"`
	TotalUsers  int       `json:"total_users"`
}

// Rank returns the user's rank and points. Users with no progress rows are
// absent from the snapshot and rank one past the last ranked user.
func (s Snapshot) Rank(userID uuid.UUID) (rank, points int) {
	for _, e := range s.Entries {
		if e.UserID == userID {
			return e.Rank, e.TotalPoints
		}
	}
	return s.TotalUsers + 1, 0
}

// NextBoundary returns the next wall-clock multiple of interval after now.
// For a 3-minute interval that is the next :00/:03/:06... minute mark, not
// simply now+interval, so clients see a stable refresh cadence.
func NextBoundary(now time.Time, interval time.Duration) time.Time {
	return now.Truncate(interval).Add(interval)
}

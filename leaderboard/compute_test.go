package leaderboard_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/uuid"

	"github.com/lingvoapp/lingvo-api/leaderboard"
)

var _ = Describe("Build", func() {
	var ctx context.Context

	const interval = 3 * time.Minute

	BeforeEach(func() {
		ctx = context.Background()
		cleanDB()
	})

	It("returns an empty snapshot when nobody has progress", func() {
		snap, err := leaderboard.Build(ctx, db, interval, time.Now().UTC())
		Expect(err).NotTo(HaveOccurred())
		Expect(snap.Entries).To(BeEmpty())
		Expect(snap.TotalUsers).To(BeZero())
	})

	It("sums points across packs and ranks users by total descending", func() {
		alice := createUser(1, "+998900000001", "Alice")
		bob := createUser(2, "+998900000002", "Bob")
		carol := createUser(3, "+998900000003", "Carol")
		p1 := createPack("pack one")
		p2 := createPack("pack two")

		createProgress(alice, p1, 80, 80)
		createProgress(alice, p2, 50, 50)
		createProgress(bob, p1, 95, 100)
		createProgress(carol, p1, 40, 40)

		snap, err := leaderboard.Build(ctx, db, interval, time.Now().UTC())
		Expect(err).NotTo(HaveOccurred())

		Expect(snap.Entries).To(HaveLen(3))
		Expect(snap.TotalUsers).To(Equal(3))

		Expect(snap.Entries[0].UserID).To(Equal(alice.ID))
		Expect(snap.Entries[0].TotalPoints).To(Equal(130))
		Expect(snap.Entries[1].UserID).To(Equal(bob.ID))
		Expect(snap.Entries[1].TotalPoints).To(Equal(100))
		Expect(snap.Entries[2].UserID).To(Equal(carol.ID))
	})

	It("assigns ranks as a gapless 1-based sequence", func() {
		p := createPack("pack")
		for i := 0; i < 5; i++ {
			u := createUser(int64(i+10), uuid.NewString(), "User")
			createProgress(u, p, 50, (i+1)*10)
		}

		snap, err := leaderboard.Build(ctx, db, interval, time.Now().UTC())
		Expect(err).NotTo(HaveOccurred())

		Expect(snap.Entries).To(HaveLen(5))
		for i, e := range snap.Entries {
			Expect(e.Rank).To(Equal(i + 1))
		}
		Expect(snap.TotalUsers).To(Equal(len(snap.Entries)))
	})

	It("breaks point ties by user id ascending", func() {
		u1 := createUser(20, "+998900000020", "Tied One")
		u2 := createUser(21, "+998900000021", "Tied Two")
		p := createPack("pack")
		createProgress(u1, p, 70, 70)
		createProgress(u2, p, 70, 70)

		snap, err := leaderboard.Build(ctx, db, interval, time.Now().UTC())
		Expect(err).NotTo(HaveOccurred())
		Expect(snap.Entries).To(HaveLen(2))
		Expect(snap.Entries[0].UserID.String() < snap.Entries[1].UserID.String()).To(BeTrue())

		// Rebuilding yields the same order.
		again, err := leaderboard.Build(ctx, db, interval, time.Now().UTC())
		Expect(err).NotTo(HaveOccurred())
		Expect(again.Entries[0].UserID).To(Equal(snap.Entries[0].UserID))
		Expect(again.Entries[1].UserID).To(Equal(snap.Entries[1].UserID))
	})

	It("omits users with no progress rows", func() {
		ranked := createUser(30, "+998900000030", "Ranked")
		createUser(31, "+998900000031", "Idle")
		p := createPack("pack")
		createProgress(ranked, p, 60, 60)

		snap, err := leaderboard.Build(ctx, db, interval, time.Now().UTC())
		Expect(err).NotTo(HaveOccurred())
		Expect(snap.Entries).To(HaveLen(1))
		Expect(snap.Entries[0].UserID).To(Equal(ranked.ID))
	})

	It("stamps last_updated and the next interval boundary", func() {
		now := time.Date(2026, 9, 1, 12, 1, 30, 0, time.UTC)

		snap, err := leaderboard.Build(ctx, db, interval, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(snap.LastUpdated).To(Equal(now))
		Expect(snap.NextUpdate).To(Equal(time.Date(2026, 9, 1, 12, 3, 0, 0, time.UTC)))
	})
})

var _ = Describe("Snapshot.Rank", func() {
	It("returns the stored rank and points for a ranked user", func() {
		id := uuid.New()
		snap := leaderboard.Snapshot{
			Entries: []leaderboard.Entry{
				{UserID: uuid.New(), TotalPoints: 200, Rank: 1},
				{UserID: id, TotalPoints: 150, Rank: 2},
			},
			TotalUsers: 2,
		}

		rank, points := snap.Rank(id)
		Expect(rank).To(Equal(2))
		Expect(points).To(Equal(150))
	})

	It("ranks an absent user one past the end with zero points", func() {
		snap := leaderboard.Snapshot{
			Entries: []leaderboard.Entry{
				{UserID: uuid.New(), TotalPoints: 200, Rank: 1},
			},
			TotalUsers: 1,
		}

		rank, points := snap.Rank(uuid.New())
		Expect(rank).To(Equal(2))
		Expect(points).To(BeZero())
	})
})

var _ = Describe("NextBoundary", func() {
	It("rounds up to the next multiple of the interval", func() {
		now := time.Date(2026, 9, 1, 9, 4, 59, 0, time.UTC)
		Expect(leaderboard.NextBoundary(now, 3*time.Minute)).
			To(Equal(time.Date(2026, 9, 1, 9, 6, 0, 0, time.UTC)))
	})

	It("moves a time exactly on a boundary to the following one", func() {
		now := time.Date(2026, 9, 1, 9, 6, 0, 0, time.UTC)
		Expect(leaderboard.NextBoundary(now, 3*time.Minute)).
			To(Equal(time.Date(2026, 9, 1, 9, 9, 0, 0, time.UTC)))
	})
})

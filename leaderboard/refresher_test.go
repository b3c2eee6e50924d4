package leaderboard_test

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/cache"
	"github.com/lingvoapp/lingvo-api/leaderboard"
)

var _ = Describe("Refresher", func() {
	var (
		ctx   context.Context
		store *cache.TTLStore
	)

	BeforeEach(func() {
		ctx = context.Background()
		cleanDB()
		store = cache.NewTTLStore()
		DeferCleanup(store.Stop)
	})

	It("writes a snapshot immediately on start", func() {
		u := createUser(100, "+998900000100", "Runner")
		createProgress(u, createPack("pack"), 90, 100)

		r := leaderboard.NewRefresher(db, store, time.Minute, nil)
		r.Start(ctx)
		defer r.Stop()

		Eventually(func() error {
			_, err := store.Get(ctx, cache.KeyLeaderboard)
			return err
		}).WithTimeout(2 * time.Second).Should(Succeed())

		raw, err := store.Get(ctx, cache.KeyLeaderboard)
		Expect(err).NotTo(HaveOccurred())

		var snap leaderboard.Snapshot
		Expect(json.Unmarshal(raw, &snap)).To(Succeed())
		Expect(snap.TotalUsers).To(Equal(1))
		Expect(snap.Entries[0].UserID).To(Equal(u.ID))
	})

	It("keeps refreshing on the configured interval", func() {
		var runs atomic.Int32
		r := leaderboard.NewRefresher(db, store, 30*time.Millisecond, func(leaderboard.Snapshot) {
			runs.Add(1)
		})
		r.Start(ctx)
		defer r.Stop()

		Eventually(func() int32 { return runs.Load() }).
			WithTimeout(2 * time.Second).
			Should(BeNumerically(">=", 3))
	})

	It("is idempotent on double start", func() {
		var runs atomic.Int32
		r := leaderboard.NewRefresher(db, store, time.Hour, func(leaderboard.Snapshot) {
			runs.Add(1)
		})
		r.Start(ctx)
		r.Start(ctx)
		defer r.Stop()

		// Only the single loop's immediate run fires; a second Start would
		// have produced a second one.
		Eventually(func() int32 { return runs.Load() }).
			WithTimeout(2 * time.Second).
			Should(Equal(int32(1)))
		Consistently(func() int32 { return runs.Load() }).
			WithTimeout(100 * time.Millisecond).
			Should(Equal(int32(1)))
	})

	It("tolerates stop without start and repeated stops", func() {
		r := leaderboard.NewRefresher(db, store, time.Minute, nil)
		Expect(func() { r.Stop() }).NotTo(Panic())

		r.Start(ctx)
		r.Stop()
		Expect(func() { r.Stop() }).NotTo(Panic())
	})

	It("can be restarted after a stop", func() {
		var runs atomic.Int32
		r := leaderboard.NewRefresher(db, store, time.Hour, func(leaderboard.Snapshot) {
			runs.Add(1)
		})
		r.Start(ctx)
		Eventually(func() int32 { return runs.Load() }).WithTimeout(2 * time.Second).Should(Equal(int32(1)))
		r.Stop()

		r.Start(ctx)
		defer r.Stop()
		Eventually(func() int32 { return runs.Load() }).WithTimeout(2 * time.Second).Should(Equal(int32(2)))
	})
})

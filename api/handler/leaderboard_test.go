package handler_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/ent"
)

var _ = Describe("Leaderboard endpoint", func() {
	var pack *ent.Pack

	BeforeEach(func() {
		cleanDB()
		m := createModule("Basics")
		l := createLesson(m, "Greetings")
		pack = createPack(l, "Hello words", "word")
	})

	addProgress := func(u *ent.User, points int) {
		_, err := db.Progress.Create().
			SetUserID(u.ID).
			SetPackID(pack.ID).
			SetBestScore(100).
			SetTotalPoints(points).
			Save(context.Background())
		Expect(err).NotTo(HaveOccurred())
	}

	It("ranks users by points descending with gapless ranks", func() {
		first := createUser(1, "+998900000001", "First")
		second := createUser(2, "+998900000002", "Second")
		third := createUser(3, "+998900000003", "Third")
		addProgress(first, 300)
		addProgress(second, 200)
		addProgress(third, 100)

		rec := doGet("/leaderboard", authHeader(first))
		Expect(rec.Code).To(Equal(http.StatusOK))

		body := decodeBody(rec)
		entries := body["leaderboard"].([]any)
		Expect(entries).To(HaveLen(3))
		Expect(body["total_users"]).To(BeNumerically("==", 3))

		for i, want := range []float64{300, 200, 100} {
			entry := entries[i].(map[string]any)
			Expect(entry["total_points"]).To(BeNumerically("==", want))
			Expect(entry["rank"]).To(BeNumerically("==", i+1))
		}
	})

	It("reports the caller's own position", func() {
		first := createUser(1, "+998900000001", "First")
		second := createUser(2, "+998900000002", "Second")
		addProgress(first, 300)
		addProgress(second, 200)

		rec := doGet("/leaderboard", authHeader(second))
		current := decodeBody(rec)["current_user"].(map[string]any)
		Expect(current["rank"]).To(BeNumerically("==", 2))
		Expect(current["total_points"]).To(BeNumerically("==", 200))
	})

	It("ranks a user without progress one past the end", func() {
		ranked := createUser(1, "+998900000001", "Ranked")
		addProgress(ranked, 100)
		newcomer := createUser(2, "+998900000002", "Newcomer")

		rec := doGet("/leaderboard", authHeader(newcomer))
		body := decodeBody(rec)
		Expect(body["leaderboard"].([]any)).To(HaveLen(1))

		current := body["current_user"].(map[string]any)
		Expect(current["rank"]).To(BeNumerically("==", 2))
		Expect(current["total_points"]).To(BeNumerically("==", 0))
	})

	It("reflects a progress submission made after the snapshot was cached", func() {
		leader := createUser(1, "+998900000001", "Leader")
		addProgress(leader, 50)
		challenger := createUser(2, "+998900000002", "Challenger")
		token := authHeader(challenger)

		first := doGet("/leaderboard", token)
		Expect(decodeBody(first)["leaderboard"].([]any)).To(HaveLen(1))

		submit := doPost("/progress", token, map[string]any{
			"pack_id": pack.ID.String(),
			"score":   95,
		})
		Expect(submit.Code).To(Equal(http.StatusOK))

		second := doGet("/leaderboard", token)
		body := decodeBody(second)
		entries := body["leaderboard"].([]any)
		Expect(entries).To(HaveLen(2))

		top := entries[0].(map[string]any)
		Expect(top["first_name"]).To(Equal("Challenger"))
		Expect(top["total_points"]).To(BeNumerically("==", 100))
	})
})

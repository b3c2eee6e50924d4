package handler_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/ent"
)

var _ = Describe("Dashboard home", func() {
	var (
		user      *ent.User
		userToken string
	)

	BeforeEach(func() {
		cleanDB()
		user = createUser(1, "+998900000001", "Student")
		userToken = authHeader(user)
	})

	addProgress := func(p *ent.Pack, best, points int) {
		_, err := db.Progress.Create().
			SetUserID(user.ID).
			SetPackID(p.ID).
			SetBestScore(best).
			SetTotalPoints(points).
			Save(context.Background())
		Expect(err).NotTo(HaveOccurred())
	}

	It("reports zero points and no current lesson for an empty course", func() {
		rec := doGet("/dashboard/home", userToken)
		Expect(rec.Code).To(Equal(http.StatusOK))

		body := decodeBody(rec)
		Expect(body["total_points"]).To(BeNumerically("==", 0))
		Expect(body["current_lesson"]).To(BeNil())
	})

	It("picks the first lesson whose packs are not all finished", func() {
		m := createModule("Basics")
		done := createLesson(m, "Greetings")
		donePack := createPack(done, "Hello words", "word")
		next := createLesson(m, "Numbers")
		createPack(next, "Counting words", "word")

		addProgress(donePack, 100, 100)

		rec := doGet("/dashboard/home", userToken)
		body := decodeBody(rec)

		current := body["current_lesson"].(map[string]any)
		Expect(current["title"]).To(Equal("Numbers"))
		Expect(current["completion_percentage"]).To(BeNumerically("==", 0))
		Expect(body["total_points"]).To(BeNumerically("==", 100))
	})

	It("averages pack scores into the completion percentage", func() {
		m := createModule("Basics")
		l := createLesson(m, "Greetings")
		p1 := createPack(l, "Hello words", "word")
		createPack(l, "Goodbye words", "word")

		addProgress(p1, 80, 80)

		rec := doGet("/dashboard/home", userToken)
		current := decodeBody(rec)["current_lesson"].(map[string]any)
		Expect(current["title"]).To(Equal("Greetings"))
		Expect(current["completion_percentage"]).To(BeNumerically("==", 40))
	})

	It("skips lessons without packs", func() {
		m := createModule("Basics")
		createLesson(m, "Empty intro")
		withPacks := createLesson(m, "Greetings")
		createPack(withPacks, "Hello words", "word")

		rec := doGet("/dashboard/home", userToken)
		current := decodeBody(rec)["current_lesson"].(map[string]any)
		Expect(current["title"]).To(Equal("Greetings"))
	})

	It("reports the last lesson at 100 percent when the course is done", func() {
		m := createModule("Basics")
		l1 := createLesson(m, "Greetings")
		p1 := createPack(l1, "Hello words", "word")
		l2 := createLesson(m, "Numbers")
		p2 := createPack(l2, "Counting words", "word")

		addProgress(p1, 100, 100)
		addProgress(p2, 100, 100)

		rec := doGet("/dashboard/home", userToken)
		current := decodeBody(rec)["current_lesson"].(map[string]any)
		Expect(current["title"]).To(Equal("Numbers"))
		Expect(current["completion_percentage"]).To(BeNumerically("==", 100))
	})

	It("includes the leaderboard position", func() {
		m := createModule("Basics")
		l := createLesson(m, "Greetings")
		p := createPack(l, "Hello words", "word")

		rival := createUser(2, "+998900000002", "Rival")
		_, err := db.Progress.Create().
			SetUserID(rival.ID).
			SetPackID(p.ID).
			SetBestScore(100).
			SetTotalPoints(500).
			Save(context.Background())
		Expect(err).NotTo(HaveOccurred())
		addProgress(p, 90, 100)

		rec := doGet("/dashboard/home", userToken)
		Expect(decodeBody(rec)["leaderboard_position"]).To(BeNumerically("==", 2))
	})
})

package handler_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/ent"
)

var _ = Describe("Progress endpoints", func() {
	var (
		user      *ent.User
		userToken string
		pack      *ent.Pack
	)

	BeforeEach(func() {
		cleanDB()
		user = createUser(1, "+998900000001", "Student")
		userToken = authHeader(user)

		m := createModule("Basics")
		l := createLesson(m, "Greetings")
		pack = createPack(l, "Hello words", "word")
	})

	submit := func(score int) *map[string]any {
		rec := doPost("/progress", userToken, map[string]any{
			"pack_id": pack.ID.String(),
			"score":   score,
		})
		Expect(rec.Code).To(Equal(http.StatusOK))
		body := decodeBody(rec)
		return &body
	}

	It("awards the full bonus for a first attempt at 90 or above", func() {
		body := *submit(95)
		Expect(body["points_earned"]).To(BeNumerically("==", 100))

		progress := body["progress"].(map[string]any)
		Expect(progress["best_score"]).To(BeNumerically("==", 95))
		Expect(progress["total_points"]).To(BeNumerically("==", 100))
	})

	It("awards the raw score for a first attempt below 90", func() {
		body := *submit(60)
		Expect(body["points_earned"]).To(BeNumerically("==", 60))
	})

	It("awards nothing for a score that does not beat the best", func() {
		submit(95)

		body := *submit(80)
		Expect(body["points_earned"]).To(BeNumerically("==", 0))

		progress := body["progress"].(map[string]any)
		Expect(progress["best_score"]).To(BeNumerically("==", 95))
		Expect(progress["total_points"]).To(BeNumerically("==", 100))
	})

	It("awards the improvement delta on a better retry", func() {
		submit(60)

		body := *submit(85)
		Expect(body["points_earned"]).To(BeNumerically("==", 25))

		progress := body["progress"].(map[string]any)
		Expect(progress["best_score"]).To(BeNumerically("==", 85))
		Expect(progress["total_points"]).To(BeNumerically("==", 85))
	})

	It("rejects scores outside 0..100", func() {
		rec := doPost("/progress", userToken, map[string]any{
			"pack_id": pack.ID.String(),
			"score":   101,
		})
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("accepts a zero score", func() {
		rec := doPost("/progress", userToken, map[string]any{
			"pack_id": pack.ID.String(),
			"score":   0,
		})
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(decodeBody(rec)["points_earned"]).To(BeNumerically("==", 0))
	})

	It("404s for an unknown pack", func() {
		rec := doPost("/progress", userToken, map[string]any{
			"pack_id": "00000000-0000-0000-0000-000000000001",
			"score":   50,
		})
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})

	Describe("GET /progress", func() {
		It("lists the user's rows with the points total", func() {
			submit(95)

			rec := doGet("/progress", userToken)
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := decodeBody(rec)
			Expect(body["progress"].([]any)).To(HaveLen(1))
			Expect(body["total_points"]).To(BeNumerically("==", 100))
		})

		It("does not include other users' rows", func() {
			submit(95)
			other := authHeader(createUser(2, "+998900000002", "Other"))

			rec := doGet("/progress", other)
			body := decodeBody(rec)
			Expect(body["progress"].([]any)).To(BeEmpty())
			Expect(body["total_points"]).To(BeNumerically("==", 0))
		})
	})
})

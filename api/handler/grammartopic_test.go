package handler_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/ent"
)

var _ = Describe("Grammar topic endpoints", func() {
	var (
		adminToken string
		userToken  string
		wordPack   *ent.Pack
		grammarPk  *ent.Pack
	)

	BeforeEach(func() {
		cleanDB()
		adminToken = authHeader(createAdmin(1, "+998900000001", "Admin"))
		userToken = authHeader(createUser(2, "+998900000002", "Student"))

		m := createModule("Basics")
		l := createLesson(m, "Greetings")
		wordPack = createPack(l, "Hello words", "word")
		grammarPk = createPack(l, "Verb forms", "grammar")
	})

	It("attaches theory material to a grammar pack", func() {
		rec := doPost("/admin/grammar-topics", adminToken, map[string]any{
			"pack_id":       grammarPk.ID.String(),
			"video_url":     "https://cdn.example.com/verbs.mp4",
			"markdown_text": "# Fe'l zamonlari",
		})
		Expect(rec.Code).To(Equal(http.StatusCreated))

		list := doGet("/grammar-topics", userToken)
		Expect(list.Code).To(Equal(http.StatusOK))

		topics := decodeList(list)
		Expect(topics).To(HaveLen(1))
		Expect(topics[0]["video_url"]).To(Equal("https://cdn.example.com/verbs.mp4"))
	})

	It("refuses topics on word packs", func() {
		rec := doPost("/admin/grammar-topics", adminToken, map[string]any{
			"pack_id": wordPack.ID.String(),
		})
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(decodeBody(rec)["error"]).To(Equal("Pack is not a grammar pack"))
	})

	It("reflects updates after the cached listing is invalidated", func() {
		created := doPost("/admin/grammar-topics", adminToken, map[string]any{
			"pack_id":       grammarPk.ID.String(),
			"markdown_text": "draft",
		})
		Expect(created.Code).To(Equal(http.StatusCreated))
		id := decodeBody(created)["id"].(string)

		first := doGet("/grammar-topics", userToken)
		Expect(decodeList(first)[0]["markdown_text"]).To(Equal("draft"))

		updated := doPut("/admin/grammar-topics/"+id, adminToken, map[string]any{
			"markdown_text": "final",
		})
		Expect(updated.Code).To(Equal(http.StatusOK))

		second := doGet("/grammar-topics", userToken)
		Expect(decodeList(second)[0]["markdown_text"]).To(Equal("final"))
	})

	It("deletes a topic", func() {
		created := doPost("/admin/grammar-topics", adminToken, map[string]any{
			"pack_id": grammarPk.ID.String(),
		})
		id := decodeBody(created)["id"].(string)

		rec := doDelete("/admin/grammar-topics/"+id, adminToken)
		Expect(rec.Code).To(Equal(http.StatusOK))

		list := doGet("/grammar-topics", userToken)
		Expect(decodeList(list)).To(BeEmpty())
	})
})

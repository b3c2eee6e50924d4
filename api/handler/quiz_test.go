package handler_test

import (
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/ent"
)

var _ = Describe("Quiz endpoints", func() {
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

	Describe("GET /quiz", func() {
		It("splits packs by type and embeds their content", func() {
			rec := doPost("/admin/words", adminToken, map[string]any{
				"pack_id": wordPack.ID.String(),
				"uz_text": "salom",
				"ru_text": "привет",
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			quiz := doGet("/quiz", userToken)
			Expect(quiz.Code).To(Equal(http.StatusOK))

			body := decodeBody(quiz)
			wordPacks := body["word_packs"].([]any)
			grammarPacks := body["grammar_packs"].([]any)
			Expect(wordPacks).To(HaveLen(1))
			Expect(grammarPacks).To(HaveLen(1))

			words := wordPacks[0].(map[string]any)["words"].([]any)
			Expect(words).To(HaveLen(1))
			Expect(words[0].(map[string]any)["uz_text"]).To(Equal("salom"))
		})
	})

	Describe("word listing and invalidation", func() {
		It("serves new words after the cached listing is invalidated", func() {
			create := func(uz string) {
				rec := doPost("/admin/words", adminToken, map[string]any{
					"pack_id": wordPack.ID.String(),
					"uz_text": uz,
					"ru_text": "x",
				})
				Expect(rec.Code).To(Equal(http.StatusCreated))
			}
			create("bir")

			path := fmt.Sprintf("/quiz/packs/%s/words", wordPack.ID)
			first := doGet(path, userToken)
			Expect(first.Code).To(Equal(http.StatusOK))
			Expect(decodeList(first)).To(HaveLen(1))

			create("ikki")

			second := doGet(path, userToken)
			Expect(decodeList(second)).To(HaveLen(2))
		})

		It("serves an updated word after the cached listing is invalidated", func() {
			created := doPost("/admin/words", adminToken, map[string]any{
				"pack_id": wordPack.ID.String(),
				"uz_text": "salom",
				"ru_text": "привет",
			})
			Expect(created.Code).To(Equal(http.StatusCreated))
			id := decodeBody(created)["id"].(string)

			path := fmt.Sprintf("/quiz/packs/%s/words", wordPack.ID)
			first := doGet(path, userToken)
			Expect(decodeList(first)[0]["uz_text"]).To(Equal("salom"))

			updated := doPut("/admin/words/"+id, adminToken, map[string]any{
				"uz_text": "assalomu alaykum",
			})
			Expect(updated.Code).To(Equal(http.StatusOK))

			second := doGet(path, userToken)
			Expect(decodeList(second)[0]["uz_text"]).To(Equal("assalomu alaykum"))
		})

		It("refuses word operations on a grammar pack", func() {
			rec := doPost("/admin/words", adminToken, map[string]any{
				"pack_id": grammarPk.ID.String(),
				"uz_text": "salom",
				"ru_text": "привет",
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeBody(rec)["error"]).To(Equal("Pack is not a word pack"))

			list := doGet(fmt.Sprintf("/quiz/packs/%s/words", grammarPk.ID), userToken)
			Expect(list.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("grammar questions", func() {
		It("creates a fill question with four options", func() {
			rec := doPost("/admin/grammars", adminToken, map[string]any{
				"pack_id":        grammarPk.ID.String(),
				"type":           "fill",
				"question_text":  "Men maktab___ boraman",
				"options":        []string{"ga", "da", "dan", "ni"},
				"correct_option": 0,
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			list := doGet(fmt.Sprintf("/quiz/packs/%s/grammars", grammarPk.ID), userToken)
			Expect(list.Code).To(Equal(http.StatusOK))
			Expect(decodeList(list)).To(HaveLen(1))
		})

		It("rejects a fill question without exactly four options", func() {
			rec := doPost("/admin/grammars", adminToken, map[string]any{
				"pack_id":        grammarPk.ID.String(),
				"type":           "fill",
				"question_text":  "Men maktab___ boraman",
				"options":        []string{"ga", "da"},
				"correct_option": 0,
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects an out-of-range correct option", func() {
			rec := doPost("/admin/grammars", adminToken, map[string]any{
				"pack_id":        grammarPk.ID.String(),
				"type":           "fill",
				"question_text":  "Men maktab___ boraman",
				"options":        []string{"ga", "da", "dan", "ni"},
				"correct_option": 4,
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("requires a sentence for build questions", func() {
			rec := doPost("/admin/grammars", adminToken, map[string]any{
				"pack_id": grammarPk.ID.String(),
				"type":    "build",
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			ok := doPost("/admin/grammars", adminToken, map[string]any{
				"pack_id":  grammarPk.ID.String(),
				"type":     "build",
				"sentence": "Men kitob o'qiyman",
			})
			Expect(ok.Code).To(Equal(http.StatusCreated))
		})

		It("refuses grammar operations on a word pack", func() {
			rec := doPost("/admin/grammars", adminToken, map[string]any{
				"pack_id":  wordPack.ID.String(),
				"type":     "build",
				"sentence": "Men kitob o'qiyman",
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeBody(rec)["error"]).To(Equal("Pack is not a grammar pack"))
		})
	})
})

package handler_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Translation endpoints", func() {
	var (
		adminToken string
		userToken  string
	)

	BeforeEach(func() {
		cleanDB()
		adminToken = authHeader(createAdmin(1, "+998900000001", "Admin"))
		userToken = authHeader(createUser(2, "+998900000002", "Student"))
	})

	seed := func(input, lang, output string) {
		_, err := db.Translation.Create().
			SetInputText(input).
			SetTargetLanguage(lang).
			SetOutputText(output).
			Save(context.Background())
		Expect(err).NotTo(HaveOccurred())
	}

	Describe("POST /translate", func() {
		It("serves memoized translations", func() {
			seed("salom", "ru", "привет")

			rec := doPost("/translate", userToken, map[string]any{
				"text":            "salom",
				"target_language": "ru",
			})
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := decodeBody(rec)
			Expect(body["translated_text"]).To(Equal("привет"))
			Expect(body["from_cache"]).To(BeTrue())
		})

		It("rejects unsupported target languages", func() {
			rec := doPost("/translate", userToken, map[string]any{
				"text":            "salom",
				"target_language": "fr",
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 503 for uncached text when no API key is configured", func() {
			rec := doPost("/translate", userToken, map[string]any{
				"text":            "salom",
				"target_language": "ru",
			})
			Expect(rec.Code).To(Equal(http.StatusServiceUnavailable))
		})
	})

	Describe("admin memoization table", func() {
		It("lists, deletes and clears stored translations", func() {
			seed("salom", "ru", "привет")
			seed("rahmat", "ru", "спасибо")

			list := doGet("/admin/translations", adminToken)
			Expect(list.Code).To(Equal(http.StatusOK))
			rows := decodeList(list)
			Expect(rows).To(HaveLen(2))

			del := doDelete("/admin/translations/"+rows[0]["id"].(string), adminToken)
			Expect(del.Code).To(Equal(http.StatusOK))
			Expect(decodeList(doGet("/admin/translations", adminToken))).To(HaveLen(1))

			clear := doDelete("/admin/translations", adminToken)
			Expect(clear.Code).To(Equal(http.StatusOK))
			Expect(decodeList(doGet("/admin/translations", adminToken))).To(BeEmpty())
		})
	})
})

package handler_test

import (
	"context"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/ent"
	entpack "github.com/lingvoapp/lingvo-api/ent/pack"
)

func createModule(title string) *ent.Module {
	m, err := db.Module.Create().SetTitle(title).Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return m
}

func createLesson(m *ent.Module, title string) *ent.Lesson {
	l, err := db.Lesson.Create().SetTitle(title).SetModuleID(m.ID).Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return l
}

func createPack(l *ent.Lesson, title, packType string) *ent.Pack {
	p, err := db.Pack.Create().SetTitle(title).SetType(entpack.Type(packType)).SetLessonID(l.ID).Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return p
}

var _ = Describe("Education endpoints", func() {
	var (
		admin      *ent.User
		adminToken string
		userToken  string
	)

	BeforeEach(func() {
		cleanDB()
		admin = createAdmin(1, "+998900000001", "Admin")
		adminToken = authHeader(admin)
		userToken = authHeader(createUser(2, "+998900000002", "Student"))
	})

	Describe("GET /education/modules", func() {
		It("returns the full tree", func() {
			m := createModule("Basics")
			l := createLesson(m, "Greetings")
			createPack(l, "Hello words", "word")

			rec := doGet("/education/modules", userToken)
			Expect(rec.Code).To(Equal(http.StatusOK))

			tree := decodeList(rec)
			Expect(tree).To(HaveLen(1))
			lessons := tree[0]["lessons"].([]any)
			Expect(lessons).To(HaveLen(1))
			packs := lessons[0].(map[string]any)["packs"].([]any)
			Expect(packs).To(HaveLen(1))
		})

		It("reflects a module created after the tree was cached", func() {
			createModule("Basics")
			first := doGet("/education/modules", userToken)
			Expect(decodeList(first)).To(HaveLen(1))

			rec := doPost("/admin/modules", adminToken, map[string]any{"title": "Advanced"})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			second := doGet("/education/modules", userToken)
			Expect(decodeList(second)).To(HaveLen(2))
		})
	})

	Describe("module CRUD", func() {
		It("creates, updates and deletes a module", func() {
			created := doPost("/admin/modules", adminToken, map[string]any{"title": "Basics"})
			Expect(created.Code).To(Equal(http.StatusCreated))
			id := decodeBody(created)["id"].(string)

			updated := doPut("/admin/modules/"+id, adminToken, map[string]any{"title": "Fundamentals"})
			Expect(updated.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(updated)["title"]).To(Equal("Fundamentals"))

			deleted := doDelete("/admin/modules/"+id, adminToken)
			Expect(deleted.Code).To(Equal(http.StatusOK))

			gone := doGet("/education/modules/"+id, userToken)
			Expect(gone.Code).To(Equal(http.StatusNotFound))
		})

		It("refuses to delete a module that still has lessons", func() {
			m := createModule("Basics")
			createLesson(m, "Greetings")

			rec := doDelete("/admin/modules/"+m.ID.String(), adminToken)
			Expect(rec.Code).To(Equal(http.StatusConflict))

			Expect(db.Module.Query().CountX(context.Background())).To(Equal(1))
		})

		It("rejects a malformed id", func() {
			rec := doGet("/education/modules/not-a-uuid", userToken)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /education/modules/:id/lessons", func() {
		It("scopes the listing to the module", func() {
			m1 := createModule("Basics")
			m2 := createModule("Advanced")
			createLesson(m1, "Greetings")
			createLesson(m1, "Numbers")
			createLesson(m2, "Idioms")

			rec := doGet(fmt.Sprintf("/education/modules/%s/lessons", m1.ID), userToken)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeList(rec)).To(HaveLen(2))
		})

		It("reflects a lesson created after the listing was cached", func() {
			m := createModule("Basics")
			createLesson(m, "Greetings")

			first := doGet(fmt.Sprintf("/education/modules/%s/lessons", m.ID), userToken)
			Expect(decodeList(first)).To(HaveLen(1))

			rec := doPost("/admin/lessons", adminToken, map[string]any{
				"title":     "Numbers",
				"module_id": m.ID.String(),
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			second := doGet(fmt.Sprintf("/education/modules/%s/lessons", m.ID), userToken)
			Expect(decodeList(second)).To(HaveLen(2))
		})

		It("404s for an unknown module", func() {
			rec := doGet("/education/modules/00000000-0000-0000-0000-000000000001/lessons", userToken)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("lesson CRUD", func() {
		It("requires an existing module", func() {
			rec := doPost("/admin/lessons", adminToken, map[string]any{
				"title":     "Greetings",
				"module_id": "00000000-0000-0000-0000-000000000001",
			})
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("refuses to delete a lesson that still has packs", func() {
			m := createModule("Basics")
			l := createLesson(m, "Greetings")
			createPack(l, "Hello words", "word")

			rec := doDelete("/admin/lessons/"+l.ID.String(), adminToken)
			Expect(rec.Code).To(Equal(http.StatusConflict))

			Expect(db.Lesson.Query().CountX(context.Background())).To(Equal(1))
		})

		It("deletes an empty lesson", func() {
			m := createModule("Basics")
			l := createLesson(m, "Greetings")

			rec := doDelete("/admin/lessons/"+l.ID.String(), adminToken)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(db.Lesson.Query().CountX(context.Background())).To(BeZero())
		})
	})

	Describe("pack CRUD", func() {
		It("creates a pack and lists it under its lesson", func() {
			m := createModule("Basics")
			l := createLesson(m, "Greetings")

			created := doPost("/admin/packs", adminToken, map[string]any{
				"title":     "Hello words",
				"lesson_id": l.ID.String(),
				"type":      "word",
			})
			Expect(created.Code).To(Equal(http.StatusCreated))

			rec := doGet(fmt.Sprintf("/education/lessons/%s/packs", l.ID), userToken)
			Expect(rec.Code).To(Equal(http.StatusOK))
			packs := decodeList(rec)
			Expect(packs).To(HaveLen(1))
			Expect(packs[0]["type"]).To(Equal("word"))
		})

		It("rejects an unknown pack type", func() {
			m := createModule("Basics")
			l := createLesson(m, "Greetings")

			rec := doPost("/admin/packs", adminToken, map[string]any{
				"title":     "Hello words",
				"lesson_id": l.ID.String(),
				"type":      "video",
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("deletes a pack together with its content", func() {
			m := createModule("Basics")
			l := createLesson(m, "Greetings")
			p := createPack(l, "Hello words", "word")
			_, err := db.Word.Create().SetPackID(p.ID).SetUzText("salom").SetRuText("привет").Save(context.Background())
			Expect(err).NotTo(HaveOccurred())

			rec := doDelete("/admin/packs/"+p.ID.String(), adminToken)
			Expect(rec.Code).To(Equal(http.StatusOK))

			Expect(db.Pack.Query().CountX(context.Background())).To(BeZero())
			Expect(db.Word.Query().CountX(context.Background())).To(BeZero())
		})
	})
})

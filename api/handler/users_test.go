package handler_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/ent"
)

var _ = Describe("Admin user directory", func() {
	var (
		adminToken string
		student    *ent.User
	)

	BeforeEach(func() {
		cleanDB()
		adminToken = authHeader(createAdmin(1, "+998900000001", "Admin"))
		student = createUser(2, "+998900000002", "Student")
	})

	Describe("GET /admin/users", func() {
		It("lists every registered user", func() {
			rec := doGet("/admin/users", adminToken)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeList(rec)).To(HaveLen(2))
		})

		It("reflects profile changes made after the listing was cached", func() {
			first := doGet("/admin/users", adminToken)
			Expect(decodeList(first)).To(HaveLen(2))

			rec := doPut("/users/me", authHeader(student), map[string]any{"first_name": "Renamed"})
			Expect(rec.Code).To(Equal(http.StatusOK))

			second := doGet("/admin/users", adminToken)
			names := []string{}
			for _, u := range decodeList(second) {
				names = append(names, u["first_name"].(string))
			}
			Expect(names).To(ContainElement("Renamed"))
		})
	})

	Describe("GET /admin/users/:id", func() {
		It("returns one user", func() {
			rec := doGet("/admin/users/"+student.ID.String(), adminToken)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(rec)["phone_number"]).To(Equal(student.PhoneNumber))
		})

		It("404s for an unknown id", func() {
			rec := doGet("/admin/users/00000000-0000-0000-0000-000000000001", adminToken)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("PUT /admin/users/:id/admin", func() {
		It("grants and revokes admin rights", func() {
			grant := doPut("/admin/users/"+student.ID.String()+"/admin", adminToken, map[string]any{"is_admin": true})
			Expect(grant.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(grant)["is_admin"]).To(BeTrue())

			// The promoted user can now reach admin routes.
			promoted, err := db.User.Get(context.Background(), student.ID)
			Expect(err).NotTo(HaveOccurred())
			rec := doGet("/admin/users", authHeader(promoted))
			Expect(rec.Code).To(Equal(http.StatusOK))

			revoke := doPut("/admin/users/"+student.ID.String()+"/admin", adminToken, map[string]any{"is_admin": false})
			Expect(revoke.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(revoke)["is_admin"]).To(BeFalse())
		})
	})
})

package handler_test

import (
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/api/handler"
	"github.com/lingvoapp/lingvo-api/ent"
)

var _ = Describe("CompareVersions", func() {
	DescribeTable("ordering",
		func(a, b string, want int) {
			Expect(handler.CompareVersions(a, b)).To(Equal(want))
		},
		Entry("equal", "1.2.3", "1.2.3", 0),
		Entry("missing segments count as zero", "1.2", "1.2.0", 0),
		Entry("leading v ignored", "v2.0", "2.0", 0),
		Entry("major wins", "2.0", "1.9.9", 1),
		Entry("patch compared numerically", "1.0.10", "1.0.9", 1),
		Entry("shorter older", "1.9", "2", -1),
	)
})

var _ = Describe("Subscription endpoints", func() {
	var (
		admin      *ent.User
		adminToken string
		user       *ent.User
		userToken  string
	)

	BeforeEach(func() {
		cleanDB()
		admin = createAdmin(1, "+998900000001", "Admin")
		adminToken = authHeader(admin)
		user = createUser(2, "+998900000002", "Student")
		userToken = authHeader(user)
	})

	createSub := func(u *ent.User, start, end time.Time, amount float64) map[string]any {
		rec := doPost("/admin/subscriptions", adminToken, map[string]any{
			"user_id":    u.ID.String(),
			"start_date": start.Format(time.RFC3339),
			"end_date":   end.Format(time.RFC3339),
			"amount":     amount,
		})
		Expect(rec.Code).To(Equal(http.StatusCreated))
		return decodeBody(rec)
	}

	Describe("GET /subscriptions/check", func() {
		It("reports no premium without a subscription", func() {
			rec := doGet("/subscriptions/check", userToken)
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := decodeBody(rec)
			Expect(body["is_premium"]).To(BeFalse())
			Expect(body["is_mock"]).To(BeFalse())
		})

		It("grants a mock day pass to clients at the required version", func() {
			rec := doGet("/subscriptions/check?app_version=1.0.0", userToken)
			body := decodeBody(rec)
			Expect(body["is_premium"]).To(BeTrue())
			Expect(body["is_mock"]).To(BeTrue())
			Expect(body["days_remaining"]).To(BeNumerically("==", 1))
		})

		It("falls through to the real lookup for older clients", func() {
			rec := doGet("/subscriptions/check?app_version=0.9.0", userToken)
			body := decodeBody(rec)
			Expect(body["is_premium"]).To(BeFalse())
		})

		It("reports an active subscription with remaining days", func() {
			now := time.Now().UTC()
			createSub(user, now.Add(-24*time.Hour), now.Add(10*24*time.Hour), 50000)

			rec := doGet("/subscriptions/check", userToken)
			body := decodeBody(rec)
			Expect(body["is_premium"]).To(BeTrue())
			Expect(body["is_mock"]).To(BeFalse())
			Expect(body["days_remaining"]).To(BeNumerically("==", 10))
		})

		It("ignores expired subscriptions", func() {
			now := time.Now().UTC()
			createSub(user, now.Add(-48*time.Hour), now.Add(-24*time.Hour), 50000)

			rec := doGet("/subscriptions/check", userToken)
			Expect(decodeBody(rec)["is_premium"]).To(BeFalse())
		})

		It("reflects a new subscription after the cached status was invalidated", func() {
			first := doGet("/subscriptions/check", userToken)
			Expect(decodeBody(first)["is_premium"]).To(BeFalse())

			now := time.Now().UTC()
			createSub(user, now, now.Add(30*24*time.Hour), 50000)

			second := doGet("/subscriptions/check", userToken)
			Expect(decodeBody(second)["is_premium"]).To(BeTrue())
		})
	})

	Describe("admin CRUD", func() {
		It("creates a subscription and stamps the granting admin", func() {
			now := time.Now().UTC()
			body := createSub(user, now, now.Add(30*24*time.Hour), 50000)
			Expect(body["user_id"]).To(Equal(user.ID.String()))
			Expect(body["currency"]).To(Equal("UZS"))
			Expect(body["is_active"]).To(BeTrue())
		})

		It("rejects an end date before the start date", func() {
			now := time.Now().UTC()
			rec := doPost("/admin/subscriptions", adminToken, map[string]any{
				"user_id":    user.ID.String(),
				"start_date": now.Format(time.RFC3339),
				"end_date":   now.Add(-time.Hour).Format(time.RFC3339),
				"amount":     50000,
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects a non-positive amount", func() {
			now := time.Now().UTC()
			rec := doPost("/admin/subscriptions", adminToken, map[string]any{
				"user_id":    user.ID.String(),
				"start_date": now.Format(time.RFC3339),
				"end_date":   now.Add(time.Hour).Format(time.RFC3339),
				"amount":     -5,
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("deactivates instead of deleting", func() {
			now := time.Now().UTC()
			created := createSub(user, now, now.Add(30*24*time.Hour), 50000)
			id := created["id"].(string)

			rec := doDelete("/admin/subscriptions/"+id, adminToken)
			Expect(rec.Code).To(Equal(http.StatusOK))

			list := doGet("/admin/subscriptions", adminToken)
			subs := decodeList(list)
			Expect(subs).To(HaveLen(1))
			Expect(subs[0]["is_active"]).To(BeFalse())
		})

		It("reflects new rows in the cached admin listing", func() {
			first := doGet("/admin/subscriptions", adminToken)
			Expect(decodeList(first)).To(BeEmpty())

			now := time.Now().UTC()
			createSub(user, now, now.Add(30*24*time.Hour), 50000)

			second := doGet("/admin/subscriptions", adminToken)
			Expect(decodeList(second)).To(HaveLen(1))
		})
	})

	Describe("GET /admin/subscriptions/stats", func() {
		It("aggregates revenue over active subscriptions", func() {
			now := time.Now().UTC()
			createSub(user, now, now.Add(30*24*time.Hour), 50000)
			other := createUser(3, "+998900000003", "Other")
			createSub(other, now, now.Add(30*24*time.Hour), 30000)

			rec := doGet("/admin/subscriptions/stats", adminToken)
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := decodeBody(rec)
			Expect(body["total_revenue"]).To(BeNumerically("==", 80000))
			Expect(body["active_subscriptions"]).To(BeNumerically("==", 2))
			Expect(body["average_amount"]).To(BeNumerically("==", 40000))
			Expect(body["revenue_by_month"].([]any)).To(HaveLen(12))
		})
	})

	Describe("business profile", func() {
		It("creates the singleton with defaults on first read", func() {
			rec := doGet("/admin/business-profile", adminToken)
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := decodeBody(rec)
			Expect(body["required_app_version"]).To(Equal("1.0.0"))
			Expect(body["company_name"]).To(Equal("Educational Platform"))
		})

		It("updates the required version", func() {
			rec := doPut("/admin/business-profile", adminToken, map[string]any{
				"required_app_version": "2.1",
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(rec)["required_app_version"]).To(Equal("2.1"))

			// Clients below the new bar lose the mock grant.
			check := doGet("/subscriptions/check?app_version=1.0.0", userToken)
			Expect(decodeBody(check)["is_mock"]).To(BeFalse())
		})

		It("rejects a malformed version string", func() {
			rec := doPut("/admin/business-profile", adminToken, map[string]any{
				"required_app_version": "not.a.version",
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})
})

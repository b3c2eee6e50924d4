package handler_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Auth endpoints", func() {
	BeforeEach(func() {
		cleanDB()
	})

	Describe("POST /auth/send-code", func() {
		It("rejects unregistered phone numbers", func() {
			rec := doPost("/auth/send-code", "", map[string]any{"phone_number": "+998901112233"})
			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(decodeBody(rec)["error"]).To(ContainSubstring("register via Telegram bot"))
		})

		It("rejects a missing phone number", func() {
			rec := doPost("/auth/send-code", "", map[string]any{})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /auth/login", func() {
		It("exchanges a valid code for a token pair", func() {
			user := createUser(100, "+998901112233", "Aziz")

			code, err := otp.Issue(context.Background(), user.PhoneNumber)
			Expect(err).NotTo(HaveOccurred())

			rec := doPost("/auth/login", "", map[string]any{
				"phone_number": user.PhoneNumber,
				"code":         code,
			})
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := decodeBody(rec)
			Expect(body["access_token"]).NotTo(BeEmpty())
			Expect(body["refresh_token"]).NotTo(BeEmpty())
			Expect(body["token_type"]).To(Equal("bearer"))

			userBody := body["user"].(map[string]any)
			Expect(userBody["phone_number"]).To(Equal(user.PhoneNumber))
		})

		It("normalizes the phone number before lookup", func() {
			user := createUser(101, "+998901112234", "Aziz")

			code, err := otp.Issue(context.Background(), user.PhoneNumber)
			Expect(err).NotTo(HaveOccurred())

			rec := doPost("/auth/login", "", map[string]any{
				"phone_number": "998901112234",
				"code":         code,
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("consumes the code on first use", func() {
			user := createUser(102, "+998901112235", "Aziz")

			code, err := otp.Issue(context.Background(), user.PhoneNumber)
			Expect(err).NotTo(HaveOccurred())

			first := doPost("/auth/login", "", map[string]any{
				"phone_number": user.PhoneNumber,
				"code":         code,
			})
			Expect(first.Code).To(Equal(http.StatusOK))

			second := doPost("/auth/login", "", map[string]any{
				"phone_number": user.PhoneNumber,
				"code":         code,
			})
			Expect(second.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects a wrong code", func() {
			user := createUser(103, "+998901112236", "Aziz")

			code, err := otp.Issue(context.Background(), user.PhoneNumber)
			Expect(err).NotTo(HaveOccurred())

			wrong := "0000"
			if code == wrong {
				wrong = "0001"
			}
			rec := doPost("/auth/login", "", map[string]any{
				"phone_number": user.PhoneNumber,
				"code":         wrong,
			})
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("POST /auth/refresh", func() {
		It("issues a fresh pair from a valid refresh token", func() {
			user := createUser(104, "+998901112237", "Aziz")

			code, err := otp.Issue(context.Background(), user.PhoneNumber)
			Expect(err).NotTo(HaveOccurred())
			login := doPost("/auth/login", "", map[string]any{
				"phone_number": user.PhoneNumber,
				"code":         code,
			})
			Expect(login.Code).To(Equal(http.StatusOK))
			refresh := decodeBody(login)["refresh_token"].(string)

			rec := doPost("/auth/refresh", "", map[string]any{"refresh_token": refresh})
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(rec)["access_token"]).NotTo(BeEmpty())
		})

		It("rejects an access token presented as a refresh token", func() {
			user := createUser(105, "+998901112238", "Aziz")
			access := authHeader(user)

			rec := doPost("/auth/refresh", "", map[string]any{
				"refresh_token": access[len("Bearer "):],
			})
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("protected routes", func() {
		It("rejects requests without a token", func() {
			rec := doGet("/users/me", "")
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects admin routes for regular users", func() {
			user := createUser(106, "+998901112239", "Aziz")
			rec := doPost("/admin/modules", authHeader(user), map[string]any{"title": "Basics"})
			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})
	})
})

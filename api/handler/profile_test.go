package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/ent"
)

// pngBytes returns a payload that detects as image/png, padded to size.
func pngBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
	return data
}

func uploadPhoto(token string, payload []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("photo", "avatar.png")
	Expect(err).NotTo(HaveOccurred())
	_, err = part.Write(payload)
	Expect(err).NotTo(HaveOccurred())
	Expect(writer.Close()).To(Succeed())

	req := httptest.NewRequest(http.MethodPost, "/users/me/photo", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

var _ = Describe("Profile endpoints", func() {
	var (
		user      *ent.User
		userToken string
	)

	BeforeEach(func() {
		cleanDB()
		user = createUser(1, "+998901234567", "Aziz")
		userToken = authHeader(user)
	})

	Describe("GET /users/me", func() {
		It("returns the authenticated user", func() {
			rec := doGet("/users/me", userToken)
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := decodeBody(rec)
			Expect(body["phone_number"]).To(Equal(user.PhoneNumber))
			Expect(body["first_name"]).To(Equal("Aziz"))
			Expect(body["is_admin"]).To(BeFalse())
		})
	})

	Describe("PUT /users/me", func() {
		It("updates and sanitizes names", func() {
			rec := doPut("/users/me", userToken, map[string]any{
				"first_name": "Jasur🔥123",
				"last_name":  "  Karimov  ",
			})
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := decodeBody(rec)
			Expect(body["first_name"]).To(Equal("Jasur"))
			Expect(body["last_name"]).To(Equal("Karimov"))
		})

		It("refuses to blank the first name", func() {
			rec := doPut("/users/me", userToken, map[string]any{"first_name": "123"})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("leaves omitted fields unchanged", func() {
			rec := doPut("/users/me", userToken, map[string]any{"last_name": "Karimov"})
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(rec)["first_name"]).To(Equal("Aziz"))
		})
	})

	Describe("POST /users/me/photo", func() {
		It("stores the photo and rewrites the avatar URL", func() {
			rec := uploadPhoto(userToken, pngBytes(512))
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := decodeBody(rec)
			Expect(body["avatar_url"]).To(Equal("/storage/user_photos/998901234567.png"))
		})

		It("rejects payloads over one megabyte", func() {
			rec := uploadPhoto(userToken, pngBytes(1<<20+1))
			Expect(rec.Code).To(Equal(http.StatusRequestEntityTooLarge))
		})

		It("rejects non-image payloads", func() {
			rec := uploadPhoto(userToken, []byte("definitely not an image"))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("requires the photo form field", func() {
			req := httptest.NewRequest(http.MethodPost, "/users/me/photo", nil)
			req.Header.Set("Authorization", userToken)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /users/me/refresh-avatar", func() {
		It("fails cleanly when Telegram is not configured", func() {
			rec := doPost("/users/me/refresh-avatar", userToken, nil)
			Expect(rec.Code).To(Equal(http.StatusServiceUnavailable))
		})
	})
})

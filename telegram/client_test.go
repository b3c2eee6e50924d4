package telegram_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/telegram"
)

var _ = Describe("Client", func() {
	var (
		ctx      context.Context
		server   *httptest.Server
		requests []*http.Request
		forms    []map[string]string
		respond  func(method string) (int, string)
	)

	BeforeEach(func() {
		ctx = context.Background()
		requests = nil
		forms = nil
		respond = func(string) (int, string) {
			return http.StatusOK, `{"ok":true,"result":true}`
		}
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.ParseForm()).To(Succeed())
			form := make(map[string]string)
			for k := range r.PostForm {
				form[k] = r.PostForm.Get(k)
			}
			requests = append(requests, r)
			forms = append(forms, form)

			status, body := respond(r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
		DeferCleanup(server.Close)
	})

	newClient := func() *telegram.Client {
		return telegram.NewClientWithBaseURL("test-token", server.URL)
	}

	It("sends a message to the bot endpoint for its token", func() {
		Expect(newClient().SendMessage(ctx, 42, "salom")).To(Succeed())

		Expect(requests).To(HaveLen(1))
		Expect(requests[0].URL.Path).To(Equal("/bottest-token/sendMessage"))
		Expect(forms[0]).To(HaveKeyWithValue("chat_id", "42"))
		Expect(forms[0]).To(HaveKeyWithValue("text", "salom"))
	})

	It("attaches a contact-request keyboard", func() {
		Expect(newClient().SendContactRequest(ctx, 42, "share please", "Share")).To(Succeed())

		Expect(forms[0]).To(HaveKey("reply_markup"))
		Expect(forms[0]["reply_markup"]).To(ContainSubstring(`"request_contact":true`))
		Expect(forms[0]["reply_markup"]).To(ContainSubstring(`"one_time_keyboard":true`))
	})

	It("surfaces API-level failures as errors", func() {
		respond = func(string) (int, string) {
			return http.StatusBadRequest, `{"ok":false,"description":"chat not found"}`
		}

		err := newClient().SendMessage(ctx, 42, "salom")
		Expect(err).To(MatchError(ContainSubstring("chat not found")))
	})

	It("decodes chat profiles", func() {
		respond = func(string) (int, string) {
			return http.StatusOK, `{"ok":true,"result":{"id":42,"first_name":"Aziz","last_name":"K"}}`
		}

		chat, err := newClient().GetChat(ctx, 42)
		Expect(err).NotTo(HaveOccurred())
		Expect(chat.FirstName).To(Equal("Aziz"))
		Expect(chat.LastName).To(Equal("K"))
	})

	It("builds a download URL for the largest profile photo", func() {
		respond = func(path string) (int, string) {
			switch path {
			case "/bottest-token/getUserProfilePhotos":
				return http.StatusOK, `{"ok":true,"result":{"total_count":1,"photos":[[{"file_id":"small"},{"file_id":"large"}]]}}`
			case "/bottest-token/getFile":
				return http.StatusOK, `{"ok":true,"result":{"file_path":"photos/file_7.jpg"}}`
			}
			return http.StatusNotFound, `{"ok":false,"description":"unknown method"}`
		}

		url, err := newClient().ProfilePhotoURL(ctx, 42)
		Expect(err).NotTo(HaveOccurred())
		Expect(url).To(Equal(server.URL + "/file/bottest-token/photos/file_7.jpg"))

		// The largest size's file id is the one resolved.
		Expect(forms[1]).To(HaveKeyWithValue("file_id", "large"))
	})

	It("returns an empty URL for users without photos", func() {
		respond = func(string) (int, string) {
			return http.StatusOK, `{"ok":true,"result":{"total_count":0,"photos":[]}}`
		}

		url, err := newClient().ProfilePhotoURL(ctx, 42)
		Expect(err).NotTo(HaveOccurred())
		Expect(url).To(BeEmpty())
	})

	It("long-polls updates with the given offset", func() {
		respond = func(string) (int, string) {
			return http.StatusOK, `{"ok":true,"result":[{"update_id":7,"message":{"message_id":1,"from":{"id":42,"first_name":"Aziz"},"chat":{"id":42},"text":"/start"}}]}`
		}

		updates, err := newClient().GetUpdates(ctx, 7)
		Expect(err).NotTo(HaveOccurred())
		Expect(updates).To(HaveLen(1))
		Expect(updates[0].UpdateID).To(Equal(int64(7)))
		Expect(updates[0].Message.Text).To(Equal("/start"))

		Expect(forms[0]).To(HaveKeyWithValue("offset", "7"))
		Expect(forms[0]).To(HaveKey("timeout"))
	})
})

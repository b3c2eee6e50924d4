package handler_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/api"
	"github.com/lingvoapp/lingvo-api/api/handler"
	"github.com/lingvoapp/lingvo-api/auth"
	"github.com/lingvoapp/lingvo-api/cache"
	"github.com/lingvoapp/lingvo-api/config"
	"github.com/lingvoapp/lingvo-api/ent"
	"github.com/lingvoapp/lingvo-api/ent/enttest"
	"github.com/lingvoapp/lingvo-api/telegram"
	"github.com/lingvoapp/lingvo-api/translate"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc.org/sqlite registers itself as "sqlite" in database/sql, but
	// ent's dialect layer recognises only "sqlite3". We fetch the already-
	// registered driver via a temporary connection and re-register it under
	// the name ent expects, so enttest.Open works without further changes.
	tmp, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		panic(err)
	}
	drv := tmp.Driver()
	_ = tmp.Close()
	sql.Register("sqlite3", drv)

	gin.SetMode(gin.TestMode)
}

var (
	db     *ent.Client
	store  *cache.TTLStore
	tokens *auth.Tokens
	otp    *auth.OTP
	router *gin.Engine
)

func TestHandlers(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Handler Suite")
}

var _ = BeforeSuite(func() {
	db = enttest.Open(GinkgoT(), "sqlite3", "file:handler_test?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	store = cache.NewTTLStore()
	tokens = auth.NewTokens("test-secret", time.Hour, 24*time.Hour)

	cfg := &config.Config{
		StoragePath:         GinkgoT().TempDir(),
		LeaderboardInterval: 3 * time.Minute,
	}
	inv := cache.NewInvalidator(store)
	otp = auth.NewOTP(store, 5*time.Minute)
	router = api.NewRouter(api.Deps{
		Cfg:        cfg,
		DB:         db,
		Store:      store,
		Inv:        inv,
		Tokens:     tokens,
		OTP:        otp,
		Telegram:   telegram.NewClient(""),
		Translator: translate.New(db, ""),
		Hub:        handler.NewWSHub(),
	})
})

var _ = AfterSuite(func() {
	store.Stop()
	if db != nil {
		Expect(db.Close()).To(Succeed())
	}
})

// cleanDB deletes all rows in foreign-key-safe order and clears the cached
// views touched by the previous spec.
func cleanDB() {
	ctx := context.Background()
	db.Progress.Delete().ExecX(ctx)
	db.Word.Delete().ExecX(ctx)
	db.Grammar.Delete().ExecX(ctx)
	db.GrammarTopic.Delete().ExecX(ctx)
	db.Pack.Delete().ExecX(ctx)
	db.Lesson.Delete().ExecX(ctx)
	db.Module.Delete().ExecX(ctx)
	db.Subscription.Delete().ExecX(ctx)
	db.Translation.Delete().ExecX(ctx)
	db.BusinessProfile.Delete().ExecX(ctx)
	db.User.Delete().ExecX(ctx)

	// Swap in a fresh ttlcache behind the same pointer so the router built
	// in BeforeSuite keeps working.
	store.Stop()
	*store = *cache.NewTTLStore()
}

func createUser(telegramID int64, phone, firstName string) *ent.User {
	u, err := db.User.Create().
		SetTelegramID(telegramID).
		SetPhoneNumber(phone).
		SetFirstName(firstName).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return u
}

func createAdmin(telegramID int64, phone, firstName string) *ent.User {
	u, err := db.User.Create().
		SetTelegramID(telegramID).
		SetPhoneNumber(phone).
		SetFirstName(firstName).
		SetIsAdmin(true).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return u
}

func authHeader(u *ent.User) string {
	token, err := tokens.Issue(u.ID, u.PhoneNumber, auth.TokenAccess)
	Expect(err).NotTo(HaveOccurred())
	return "Bearer " + token
}

func doRequest(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func doGet(path, token string) *httptest.ResponseRecorder {
	return doRequest(http.MethodGet, path, token, nil)
}

func doPost(path, token string, body any) *httptest.ResponseRecorder {
	return doRequest(http.MethodPost, path, token, body)
}

func doPut(path, token string, body any) *httptest.ResponseRecorder {
	return doRequest(http.MethodPut, path, token, body)
}

func doDelete(path, token string) *httptest.ResponseRecorder {
	return doRequest(http.MethodDelete, path, token, nil)
}

func decodeBody(rec *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(Succeed())
	return out
}

func decodeList(rec *httptest.ResponseRecorder) []map[string]any {
	var out []map[string]any
	Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(Succeed())
	return out
}

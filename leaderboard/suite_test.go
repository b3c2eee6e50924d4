package leaderboard_test

import (
	"context"
	"database/sql"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/ent"
	"github.com/lingvoapp/lingvo-api/ent/enttest"
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
}

// db is the shared ent client opened once per suite against an in-memory SQLite
// database. The schema is auto-migrated on open; rows are cleared in BeforeEach.
var db *ent.Client

func TestLeaderboard(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Leaderboard Suite")
}

var _ = BeforeSuite(func() {
	db = enttest.Open(GinkgoT(), "sqlite3", "file:leaderboard_test?mode=memory&cache=shared&_pragma=foreign_keys(1)")
})

var _ = AfterSuite(func() {
	if db != nil {
		Expect(db.Close()).To(Succeed())
	}
})

// cleanDB deletes all rows in foreign-key-safe order. Call at the top of each
// BeforeEach so every spec starts from a blank slate.
func cleanDB() {
	ctx := context.Background()
	db.Progress.Delete().ExecX(ctx)
	db.Pack.Delete().ExecX(ctx)
	db.Lesson.Delete().ExecX(ctx)
	db.Module.Delete().ExecX(ctx)
	db.User.Delete().ExecX(ctx)
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

// createPack inserts a word pack under a fresh module/lesson chain so
// progress rows have something to reference.
func createPack(title string) *ent.Pack {
	ctx := context.Background()
	m, err := db.Module.Create().SetTitle(title + " module").Save(ctx)
	Expect(err).NotTo(HaveOccurred())
	l, err := db.Lesson.Create().SetTitle(title + " lesson").SetModuleID(m.ID).Save(ctx)
	Expect(err).NotTo(HaveOccurred())
	p, err := db.Pack.Create().SetTitle(title).SetType("word").SetLessonID(l.ID).Save(ctx)
	Expect(err).NotTo(HaveOccurred())
	return p
}

func createProgress(u *ent.User, p *ent.Pack, bestScore, totalPoints int) *ent.Progress {
	pr, err := db.Progress.Create().
		SetUserID(u.ID).
		SetPackID(p.ID).
		SetBestScore(bestScore).
		SetTotalPoints(totalPoints).
		Save(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return pr
}

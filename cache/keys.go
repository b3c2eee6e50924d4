package cache

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Cache key registry. Every cached view in the system is named here; handlers
// never build key strings themselves. Scoped keys embed the owning entity's
// id so invalidation can target one module/lesson/pack without flushing the
// rest.
const (
	KeyModules       = "modules"
	KeyQuiz          = "quiz"
	KeyUsers         = "users"
	KeyLeaderboard   = "leaderboard"
	KeyGrammarTopics = "grammar_topics"
	KeyAdminSubs     = "subscriptions:admin:list"
)

func KeyLessonsByModule(moduleID uuid.UUID) string {
	return fmt.Sprintf("lessons:module:%s", moduleID)
}

func KeyPacksByLesson(lessonID uuid.UUID) string {
	return fmt.Sprintf("packs:lesson:%s", lessonID)
}

func KeyWordsByPack(packID uuid.UUID) string {
	return fmt.Sprintf("words:pack:%s", packID)
}

func KeyGrammarsByPack(packID uuid.UUID) string {
	return fmt.Sprintf("grammars:pack:%s", packID)
}

func KeySubscriptionByUser(userID uuid.UUID) string {
	return fmt.Sprintf("subscription:user:%s", userID)
}

func KeyOTP(phoneNumber string) string {
	return fmt.Sprintf("otp:%s", phoneNumber)
}

// TTLs per view. The leaderboard carries no TTL at all: the refresher
// overwrites it on every run, and progress submissions delete it, so expiry
// would only add avoidable misses. Every other view has a TTL backstop in
// case a delete is lost.
const (
	// TTLCatalog covers the global aggregates (modules, quiz, users,
	// grammar_topics).
	TTLCatalog = time.Hour
	// TTLScoped covers per-module/lesson/pack views.
	TTLScoped = 30 * time.Minute
	// TTLSubscription covers the per-user premium status.
	TTLSubscription = 5 * time.Minute
	// TTLAdminSubs covers the admin subscription listing.
	TTLAdminSubs = 10 * time.Minute
)

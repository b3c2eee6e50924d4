package cache

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Invalidator deletes every cached view that could have read a just-mutated
// row. The edge table below is deliberately coarse: deleting one key too many
// costs one recompute, serving one stale view costs correctness, so each
// method fans out to the mutated entity's own view plus all ancestor
// aggregates. Delete failures are logged and swallowed; the per-view TTLs
// bound how long a lost delete can matter.
type Invalidator struct {
	store Store
}

func NewInvalidator(store Store) *Invalidator {
	return &Invalidator{store: store}
}

// Word covers create/update/delete of a word in the given pack.
func (inv *Invalidator) Word(ctx context.Context, packID uuid.UUID) {
	inv.drop(ctx, KeyWordsByPack(packID), KeyQuiz)
}

// Grammar covers create/update/delete of a grammar question in the given pack.
func (inv *Invalidator) Grammar(ctx context.Context, packID uuid.UUID) {
	inv.drop(ctx, KeyGrammarsByPack(packID), KeyQuiz)
}

// Pack covers create/update/delete of a pack. Pack rows appear in the
// lesson-scoped listing, the module tree and the quiz aggregate.
func (inv *Invalidator) Pack(ctx context.Context, lessonID, moduleID uuid.UUID) {
	inv.drop(ctx, KeyPacksByLesson(lessonID), KeyLessonsByModule(moduleID), KeyModules, KeyQuiz)
}

// Lesson covers create/update/delete of a lesson.
func (inv *Invalidator) Lesson(ctx context.Context, moduleID uuid.UUID) {
	inv.drop(ctx, KeyLessonsByModule(moduleID), KeyModules)
}

// Module covers create/update/delete of a module.
func (inv *Invalidator) Module(ctx context.Context) {
	inv.drop(ctx, KeyModules)
}

// GrammarTopic covers create/update/delete of a grammar topic.
func (inv *Invalidator) GrammarTopic(ctx context.Context) {
	inv.drop(ctx, KeyGrammarTopics)
}

// User covers any user profile mutation.
func (inv *Invalidator) User(ctx context.Context) {
	inv.drop(ctx, KeyUsers)
}

// Progress covers a progress submission that changed a user's points. The
// ranked snapshot is the only cached view that reads progress rows.
func (inv *Invalidator) Progress(ctx context.Context) {
	inv.drop(ctx, KeyLeaderboard)
}

// Subscription covers create/update/deactivate of a subscription.
func (inv *Invalidator) Subscription(ctx context.Context, userID uuid.UUID) {
	inv.drop(ctx, KeySubscriptionByUser(userID), KeyAdminSubs)
}

func (inv *Invalidator) drop(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := inv.store.Delete(ctx, key); err != nil {
			slog.Warn("cache invalidation failed", "key", key, "error", err)
		}
	}
}

package cache_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/uuid"

	"github.com/lingvoapp/lingvo-api/cache"
)

var _ = Describe("Invalidator", func() {
	var (
		ctx   context.Context
		store *memStore
		inv   *cache.Invalidator

		packID   uuid.UUID
		lessonID uuid.UUID
		moduleID uuid.UUID
		userID   uuid.UUID
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = newMemStore()
		inv = cache.NewInvalidator(store)

		packID = uuid.New()
		lessonID = uuid.New()
		moduleID = uuid.New()
		userID = uuid.New()
	})

	It("word mutation drops the pack's word view and the quiz aggregate", func() {
		inv.Word(ctx, packID)
		Expect(store.deletes).To(ConsistOf(
			"words:pack:"+packID.String(),
			"quiz",
		))
	})

	It("grammar mutation drops the pack's grammar view and the quiz aggregate", func() {
		inv.Grammar(ctx, packID)
		Expect(store.deletes).To(ConsistOf(
			"grammars:pack:"+packID.String(),
			"quiz",
		))
	})

	It("pack mutation drops the lesson listing, the module tree and both aggregates", func() {
		inv.Pack(ctx, lessonID, moduleID)
		Expect(store.deletes).To(ConsistOf(
			"packs:lesson:"+lessonID.String(),
			"lessons:module:"+moduleID.String(),
			"modules",
			"quiz",
		))
	})

	It("lesson mutation drops the module listing and the modules aggregate", func() {
		inv.Lesson(ctx, moduleID)
		Expect(store.deletes).To(ConsistOf(
			"lessons:module:"+moduleID.String(),
			"modules",
		))
	})

	It("module mutation drops the modules aggregate", func() {
		inv.Module(ctx)
		Expect(store.deletes).To(Equal([]string{"modules"}))
	})

	It("grammar topic mutation drops the topics aggregate", func() {
		inv.GrammarTopic(ctx)
		Expect(store.deletes).To(Equal([]string{"grammar_topics"}))
	})

	It("user mutation drops the users aggregate", func() {
		inv.User(ctx)
		Expect(store.deletes).To(Equal([]string{"users"}))
	})

	It("progress submission drops only the leaderboard", func() {
		inv.Progress(ctx)
		Expect(store.deletes).To(Equal([]string{"leaderboard"}))
	})

	It("subscription mutation drops the user's status and the admin listing", func() {
		inv.Subscription(ctx, userID)
		Expect(store.deletes).To(ConsistOf(
			"subscription:user:"+userID.String(),
			"subscriptions:admin:list",
		))
	})

	It("swallows delete failures", func() {
		broken := cache.NewInvalidator(brokenStore{})
		Expect(func() { broken.Pack(ctx, lessonID, moduleID) }).NotTo(Panic())
	})

	It("forces the next read-through to recompute", func() {
		computes := 0
		compute := func(context.Context) (payload, error) {
			computes++
			return payload{Count: computes}, nil
		}

		key := cache.KeyWordsByPack(packID)
		_, err := cache.GetOrCompute(ctx, store, key, time.Minute, compute)
		Expect(err).NotTo(HaveOccurred())

		inv.Word(ctx, packID)

		got, err := cache.GetOrCompute(ctx, store, key, time.Minute, compute)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Count).To(Equal(2))
		Expect(computes).To(Equal(2))
	})
})

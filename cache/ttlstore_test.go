package cache_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/cache"
)

var _ = Describe("TTLStore", func() {
	var (
		ctx   context.Context
		store *cache.TTLStore
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = cache.NewTTLStore()
		DeferCleanup(store.Stop)
	})

	It("returns ErrMiss for an absent key", func() {
		_, err := store.Get(ctx, "nope")
		Expect(err).To(MatchError(cache.ErrMiss))
	})

	It("round-trips a value", func() {
		Expect(store.Set(ctx, "k", []byte("v"), time.Minute)).To(Succeed())

		got, err := store.Get(ctx, "k")
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal([]byte("v")))
	})

	It("expires entries after their TTL", func() {
		Expect(store.Set(ctx, "k", []byte("v"), 20*time.Millisecond)).To(Succeed())

		Eventually(func() error {
			_, err := store.Get(ctx, "k")
			return err
		}).WithTimeout(time.Second).Should(MatchError(cache.ErrMiss))
	})

	It("keeps zero-TTL entries until deleted", func() {
		Expect(store.Set(ctx, "k", []byte("v"), 0)).To(Succeed())

		Consistently(func() error {
			_, err := store.Get(ctx, "k")
			return err
		}).WithTimeout(100 * time.Millisecond).Should(Succeed())

		Expect(store.Delete(ctx, "k")).To(Succeed())
		_, err := store.Get(ctx, "k")
		Expect(err).To(MatchError(cache.ErrMiss))
	})

	It("overwrites an existing key in place", func() {
		Expect(store.Set(ctx, "k", []byte("one"), time.Minute)).To(Succeed())
		Expect(store.Set(ctx, "k", []byte("two"), time.Minute)).To(Succeed())

		got, err := store.Get(ctx, "k")
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal([]byte("two")))
	})
})

package cache_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/cache"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

var _ = Describe("GetOrCompute", func() {
	var (
		ctx      context.Context
		store    *memStore
		computes int
		compute  func(context.Context) (payload, error)
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = newMemStore()
		computes = 0
		compute = func(context.Context) (payload, error) {
			computes++
			return payload{Name: "fresh", Count: computes}, nil
		}
	})

	It("computes and caches on a cold store", func() {
		got, err := cache.GetOrCompute(ctx, store, "view", time.Minute, compute)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(payload{Name: "fresh", Count: 1}))
		Expect(computes).To(Equal(1))
		Expect(store.sets).To(Equal([]string{"view"}))
		Expect(store.ttls["view"]).To(Equal(time.Minute))
	})

	It("serves the cached payload without recomputing", func() {
		first, err := cache.GetOrCompute(ctx, store, "view", time.Minute, compute)
		Expect(err).NotTo(HaveOccurred())

		second, err := cache.GetOrCompute(ctx, store, "view", time.Minute, compute)
		Expect(err).NotTo(HaveOccurred())

		Expect(second).To(Equal(first))
		Expect(computes).To(Equal(1))
	})

	It("recomputes after the key is deleted", func() {
		_, err := cache.GetOrCompute(ctx, store, "view", time.Minute, compute)
		Expect(err).NotTo(HaveOccurred())

		Expect(store.Delete(ctx, "view")).To(Succeed())

		got, err := cache.GetOrCompute(ctx, store, "view", time.Minute, compute)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Count).To(Equal(2))
		Expect(computes).To(Equal(2))
	})

	It("falls back to compute when the store is down", func() {
		got, err := cache.GetOrCompute(ctx, brokenStore{}, "view", time.Minute, compute)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(payload{Name: "fresh", Count: 1}))
	})

	It("treats an undecodable entry as a miss and overwrites it", func() {
		Expect(store.Set(ctx, "view", []byte("{not json"), time.Minute)).To(Succeed())

		got, err := cache.GetOrCompute(ctx, store, "view", time.Minute, compute)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Name).To(Equal("fresh"))
		Expect(computes).To(Equal(1))

		// The corrupt entry was replaced with the fresh payload.
		raw, err := store.Get(ctx, "view")
		Expect(err).NotTo(HaveOccurred())
		Expect(raw).To(MatchJSON(`{"name":"fresh","count":1}`))
	})

	It("propagates compute errors without writing the cache", func() {
		boom := errors.New("source down")
		_, err := cache.GetOrCompute(ctx, store, "view", time.Minute, func(context.Context) (payload, error) {
			return payload{}, boom
		})
		Expect(err).To(MatchError(boom))
		Expect(store.sets).To(BeEmpty())
	})
})

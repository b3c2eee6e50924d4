package auth_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/auth"
	"github.com/lingvoapp/lingvo-api/cache"
)

var _ = Describe("OTP", func() {
	const phone = "+998901234567"

	var (
		ctx   context.Context
		store *cache.TTLStore
		otp   *auth.OTP
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = cache.NewTTLStore()
		DeferCleanup(store.Stop)
		otp = auth.NewOTP(store, time.Minute)
	})

	It("issues a 4-digit code that verifies once", func() {
		code, err := otp.Issue(ctx, phone)
		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(MatchRegexp(`^\d{4}$`))

		Expect(otp.Verify(ctx, phone, code)).To(BeTrue())
		// Single use: the same code is gone after a successful login.
		Expect(otp.Verify(ctx, phone, code)).To(BeFalse())
	})

	It("rejects a wrong code without consuming the right one", func() {
		code, err := otp.Issue(ctx, phone)
		Expect(err).NotTo(HaveOccurred())

		wrong := "0000"
		if code == wrong {
			wrong = "0001"
		}
		Expect(otp.Verify(ctx, phone, wrong)).To(BeFalse())
		Expect(otp.Verify(ctx, phone, code)).To(BeTrue())
	})

	It("rejects a code for a phone that was never issued one", func() {
		Expect(otp.Verify(ctx, "+998909999999", "1234")).To(BeFalse())
	})

	It("replaces a previous code on re-issue", func() {
		first, err := otp.Issue(ctx, phone)
		Expect(err).NotTo(HaveOccurred())
		second, err := otp.Issue(ctx, phone)
		Expect(err).NotTo(HaveOccurred())

		if first != second {
			Expect(otp.Verify(ctx, phone, first)).To(BeFalse())
		}
		Expect(otp.Verify(ctx, phone, second)).To(BeTrue())
	})

	It("expires codes after the TTL", func() {
		quick := auth.NewOTP(store, 20*time.Millisecond)
		code, err := quick.Issue(ctx, phone)
		Expect(err).NotTo(HaveOccurred())

		Eventually(func() bool {
			return quick.Verify(ctx, phone, code)
		}).WithTimeout(time.Second).Should(BeFalse())
	})

	It("stores only a hash of the code", func() {
		code, err := otp.Issue(ctx, phone)
		Expect(err).NotTo(HaveOccurred())

		raw, err := store.Get(ctx, cache.KeyOTP(phone))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(raw)).NotTo(ContainSubstring(code))
	})
})

package telegram_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/telegram"
)

var _ = Describe("SanitizeName", func() {
	It("keeps latin and cyrillic letters", func() {
		Expect(telegram.SanitizeName("Aziz")).To(Equal("Aziz"))
		Expect(telegram.SanitizeName("Дмитрий")).To(Equal("Дмитрий"))
	})

	It("strips emojis, digits and punctuation", func() {
		Expect(telegram.SanitizeName("Aziz 🔥99!")).To(Equal("Aziz"))
		Expect(telegram.SanitizeName("⭐⭐⭐")).To(Equal(""))
	})

	It("collapses runs of whitespace", func() {
		Expect(telegram.SanitizeName("  Anna   Maria  ")).To(Equal("Anna Maria"))
	})

	It("caps the result at 50 characters", func() {
		long := strings.Repeat("a", 80)
		Expect(telegram.SanitizeName(long)).To(HaveLen(50))
	})

	It("returns empty for empty input", func() {
		Expect(telegram.SanitizeName("")).To(Equal(""))
	})
})

var _ = Describe("NormalizePhone", func() {
	It("adds the leading plus when missing", func() {
		Expect(telegram.NormalizePhone("998901234567")).To(Equal("+998901234567"))
	})

	It("leaves an already-normalized number alone", func() {
		Expect(telegram.NormalizePhone("+998901234567")).To(Equal("+998901234567"))
	})

	It("leaves empty input alone", func() {
		Expect(telegram.NormalizePhone("")).To(Equal(""))
	})
})

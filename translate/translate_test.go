package translate_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lingvoapp/lingvo-api/translate"
)

var _ = Describe("Translator", func() {
	var (
		ctx context.Context
		tr  *translate.Translator
	)

	BeforeEach(func() {
		ctx = context.Background()
		db.Translation.Delete().ExecX(ctx)
		// No API key: only the memoized path works, which is exactly what
		// these specs exercise.
		tr = translate.New(db, "")
	})

	It("serves a stored translation without calling the model", func() {
		_, err := db.Translation.Create().
			SetInputText("salom").
			SetTargetLanguage("ru").
			SetOutputText("привет").
			Save(ctx)
		Expect(err).NotTo(HaveOccurred())

		got, err := tr.Translate(ctx, "salom", "ru")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.OutputText).To(Equal("привет"))
		Expect(got.FromCache).To(BeTrue())
	})

	It("trims input before the lookup", func() {
		_, err := db.Translation.Create().
			SetInputText("salom").
			SetTargetLanguage("ru").
			SetOutputText("привет").
			Save(ctx)
		Expect(err).NotTo(HaveOccurred())

		got, err := tr.Translate(ctx, "  salom  ", "ru")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.FromCache).To(BeTrue())
	})

	It("keeps languages separate", func() {
		_, err := db.Translation.Create().
			SetInputText("salom").
			SetTargetLanguage("ru").
			SetOutputText("привет").
			Save(ctx)
		Expect(err).NotTo(HaveOccurred())

		_, err = tr.Translate(ctx, "salom", "uz")
		Expect(err).To(MatchError(translate.ErrDisabled))
	})

	It("rejects unsupported target languages", func() {
		_, err := tr.Translate(ctx, "salom", "en")
		Expect(err).To(MatchError(translate.ErrUnsupportedLanguage))
	})

	It("rejects blank input", func() {
		_, err := tr.Translate(ctx, "   ", "ru")
		Expect(err).To(MatchError(translate.ErrEmptyInput))
	})

	It("fails uncached requests when no API key is configured", func() {
		_, err := tr.Translate(ctx, "yangi matn", "ru")
		Expect(err).To(MatchError(translate.ErrDisabled))
	})
})

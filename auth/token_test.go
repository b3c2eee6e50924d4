package auth_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/uuid"

	"github.com/lingvoapp/lingvo-api/auth"
)

var _ = Describe("Tokens", func() {
	var (
		tokens *auth.Tokens
		userID uuid.UUID
	)

	BeforeEach(func() {
		tokens = auth.NewTokens("test-secret", time.Hour, 24*time.Hour)
		userID = uuid.New()
	})

	It("round-trips an access token", func() {
		token, err := tokens.Issue(userID, "+998901234567", auth.TokenAccess)
		Expect(err).NotTo(HaveOccurred())

		got, err := tokens.Verify(token, auth.TokenAccess)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(userID))
	})

	It("issues distinct access and refresh tokens as a pair", func() {
		access, refresh, err := tokens.IssuePair(userID, "+998901234567")
		Expect(err).NotTo(HaveOccurred())
		Expect(access).NotTo(Equal(refresh))

		_, err = tokens.Verify(access, auth.TokenAccess)
		Expect(err).NotTo(HaveOccurred())
		_, err = tokens.Verify(refresh, auth.TokenRefresh)
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects a refresh token where an access token is expected", func() {
		refresh, err := tokens.Issue(userID, "+998901234567", auth.TokenRefresh)
		Expect(err).NotTo(HaveOccurred())

		_, err = tokens.Verify(refresh, auth.TokenAccess)
		Expect(err).To(MatchError(auth.ErrInvalidToken))
	})

	It("rejects an expired token", func() {
		shortLived := auth.NewTokens("test-secret", -time.Minute, -time.Minute)
		token, err := shortLived.Issue(userID, "+998901234567", auth.TokenAccess)
		Expect(err).NotTo(HaveOccurred())

		_, err = tokens.Verify(token, auth.TokenAccess)
		Expect(err).To(MatchError(auth.ErrInvalidToken))
	})

	It("rejects a token signed with a different secret", func() {
		other := auth.NewTokens("other-secret", time.Hour, time.Hour)
		token, err := other.Issue(userID, "+998901234567", auth.TokenAccess)
		Expect(err).NotTo(HaveOccurred())

		_, err = tokens.Verify(token, auth.TokenAccess)
		Expect(err).To(MatchError(auth.ErrInvalidToken))
	})

	It("rejects garbage", func() {
		_, err := tokens.Verify("not.a.jwt", auth.TokenAccess)
		Expect(err).To(MatchError(auth.ErrInvalidToken))
	})
})

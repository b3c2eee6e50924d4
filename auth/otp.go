package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lingvoapp/lingvo-api/cache"
)

const defaultOTPTTL = 5 * time.Minute

// OTP issues and verifies one-time login codes. Only a bcrypt hash of the
// code is kept, under otp:{phone} with a short TTL, so a dumped cache store
// never reveals usable codes. Codes are single use: verification deletes the
// entry.
type OTP struct {
	store cache.Store
	ttl   time.Duration
}

func NewOTP(store cache.Store, ttl time.Duration) *OTP {
	if ttl <= 0 {
		ttl = defaultOTPTTL
	}
	return &OTP{store: store, ttl: ttl}
}

// Issue generates a fresh 4-digit code for the phone number, replacing any
// previous one, and returns the plaintext for delivery via Telegram.
func (o *OTP) Issue(ctx context.Context, phoneNumber string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	code := fmt.Sprintf("%04d", n.Int64())

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash code: %w", err)
	}
	if err := o.store.Set(ctx, cache.KeyOTP(phoneNumber), hash, o.ttl); err != nil {
		return "", fmt.Errorf("store code: %w", err)
	}
	return code, nil
}

// Verify reports whether the code matches the one issued for the phone
// number. A successful verification consumes the code.
func (o *OTP) Verify(ctx context.Context, phoneNumber, code string) bool {
	hash, err := o.store.Get(ctx, cache.KeyOTP(phoneNumber))
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			// A broken store means nobody can log in, but that is still
			// safer than accepting unverifiable codes.
			return false
		}
		return false
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(code)) != nil {
		return false
	}
	_ = o.store.Delete(ctx, cache.KeyOTP(phoneNumber))
	return true
}

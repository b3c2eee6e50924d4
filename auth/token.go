package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType distinguishes access tokens from refresh tokens. A refresh token
// is never accepted where an access token is expected and vice versa.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

var ErrInvalidToken = errors.New("auth: invalid token")

// Claims is the JWT payload for both token types.
type Claims struct {
	jwt.RegisteredClaims
	Phone string `json:"phone"`
	Type  string `json:"type"`
}

// Tokens signs and verifies the platform's HS256 JWTs.
type Tokens struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokens(secret string, accessTTL, refreshTTL time.Duration) *Tokens {
	return &Tokens{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Issue returns a signed token of the given type for the user.
func (t *Tokens) Issue(userID uuid.UUID, phone string, typ TokenType) (string, error) {
	ttl := t.accessTTL
	if typ == TokenRefresh {
		ttl = t.refreshTTL
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
		Phone: phone,
		Type:  string(typ),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// IssuePair returns an access and a refresh token for the user.
func (t *Tokens) IssuePair(userID uuid.UUID, phone string) (access, refresh string, err error) {
	if access, err = t.Issue(userID, phone, TokenAccess); err != nil {
		return "", "", err
	}
	if refresh, err = t.Issue(userID, phone, TokenRefresh); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Verify parses and validates a token, requiring the given type, and returns
// the user id from its subject. Expired, malformed, mistyped and
// wrongly-signed tokens all come back as ErrInvalidToken.
func (t *Tokens) Verify(token string, want TokenType) (uuid.UUID, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrInvalidToken
	}
	if claims.Type != string(want) {
		return uuid.Nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}

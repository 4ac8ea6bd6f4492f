// Package auth implements the authentication and authorization core:
// token encoding/decoding, credential extraction, principal resolution,
// access-policy decisions and session-cookie construction. Everything in
// this package is pure computation over request data; persistence lookups
// happen in the services that consume it.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

// DefaultTokenTTL is the validity window for issued tokens.
const DefaultTokenTTL = 24 * time.Hour

// Claims is the signed payload embedded in every token. Role stays a raw
// string here; it is mapped onto the closed domain.Role set at resolution.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies HS256 tokens under a single process-wide
// secret. The secret is fixed at construction and never rotated at runtime.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec creates a codec. A non-positive ttl falls back to
// DefaultTokenTTL. The secret must be at least 32 bytes; config enforces
// that before this is reached.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Encode issues a signed token carrying the identity claims plus
// issued-at/expiry timestamps (expiry = issued-at + ttl).
func (c *TokenCodec) Encode(userID, email string, role domain.Role) (string, error) {
	now := c.now().UTC()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode verifies signature and expiry and returns the embedded claims.
// Every failure mode collapses into domain.ErrInvalidToken so callers
// cannot distinguish a forged token from an expired one.
func (c *TokenCodec) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return c.now() }))
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// Package token mints and validates the session tokens carried by the
// locally cached session and presented to the task API.
package token

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	apperrors "github.com/lucasmrqs/go-tarefas-server/internal/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Claims are the claims embedded in a session token.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwtlib.RegisteredClaims
}

// Issuer creates and parses HMAC-signed session tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func New(secret []byte, ttl time.Duration) *Issuer {
	return &Issuer{secret: secret, ttl: ttl}
}

// Issue mints a session token for the given user.
func (i *Issuer) Issue(userID, email string) (string, error) {
	now := NowTimeFunc()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(i.ttl)),
			ID:        uuid.New().String(),
		},
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse validates a raw token and returns its claims.
func (i *Issuer) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwtlib.ParseWithClaims(raw, claims, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, apperrors.Wrapf(apperrors.ErrInvalidToken, "unexpected signing method %q", t.Method.Alg())
		}
		return i.secret, nil
	}, jwtlib.WithTimeFunc(func() time.Time { return NowTimeFunc() }))
	if err != nil {
		if apperrors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, apperrors.Wrapf(apperrors.ErrTokenExpired, "parse")
		}
		return nil, apperrors.Wrapf(apperrors.ErrInvalidToken, "parse: %v", err)
	}
	if claims.Subject == "" {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidToken, "missing subject")
	}
	return claims, nil
}

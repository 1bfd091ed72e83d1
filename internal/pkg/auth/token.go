// Package auth mints and verifies the session tokens issued after a
// successful credential-gated login.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid is returned for any token that fails parsing, signature
// verification, or claim validation.
var ErrTokenInvalid = errors.New("invalid session token")

// TokenSigner issues and verifies HS256 session tokens. The subject claim
// carries the canonical phone of the logged-in actor.
type TokenSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenSigner creates a signer with the given shared secret and token lifetime.
func NewTokenSigner(secret string, ttl time.Duration) (*TokenSigner, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret not configured")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	return &TokenSigner{secret: []byte(secret), ttl: ttl}, nil
}

// Sign issues a token for the given subject, valid from now for the signer's TTL.
func (s *TokenSigner) Sign(subject string, now time.Time) (string, error) {
	if subject == "" {
		return "", errors.New("subject is required")
	}

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token, returning its subject.
func (s *TokenSigner) Verify(token string) (string, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &jwt.RegisteredClaims{}

	parsed, err := parser.ParseWithClaims(token, claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrTokenInvalid
	}
	if claims.Subject == "" {
		return "", ErrTokenInvalid
	}

	return claims.Subject, nil
}

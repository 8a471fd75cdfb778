package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is how long an issued access token stays valid.
const tokenTTL = 24 * time.Hour

// TokenManager signs and validates JWT access tokens with an HMAC secret.
// The same secret must be used for both operations.
type TokenManager struct {
	secret []byte
}

// NewTokenManager returns a TokenManager for the given secret.
// The secret should be at least 32 bytes of random data in production;
// anything under 16 is rejected outright.
func NewTokenManager(secret string) (*TokenManager, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: JWT secret must be at least 16 characters")
	}
	return &TokenManager{secret: []byte(secret)}, nil
}

// Generate creates a signed HS256 token with the user id as subject.
func (m *TokenManager) Generate(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		Issuer:    "travel-planner",
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token string and returns the user id it
// was issued for. Expired, malformed, or wrongly-signed tokens all fail.
func (m *TokenManager) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			// Pinning the method prevents algorithm-confusion attacks
			// (e.g. a token re-signed with "none").
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return m.secret, nil
		})
	if err != nil {
		return "", fmt.Errorf("auth: parsing token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("auth: token has no subject")
	}
	return claims.Subject, nil
}

// Package token issues and verifies the signed bearer tokens that carry a
// portal session. Tokens are self-contained: the server keeps no session
// state, so a token is valid until its embedded expiry elapses.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is the fixed validity window for every issued token.
const TTL = 7 * 24 * time.Hour

// ErrNoSecret is returned by NewManager when no signing secret is configured.
// There is deliberately no fallback secret: callers must refuse to serve.
var ErrNoSecret = errors.New("token: signing secret is not configured")

// Claims is the payload embedded in every portal token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies portal tokens with a shared HS256 secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string) (*Manager, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Manager{secret: []byte(secret), ttl: TTL}, nil
}

// Issue signs a token for the given identity with expiry TTL from now.
func (m *Manager) Issue(userID, email, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses and validates a token string. Every failure class (expired,
// malformed, tampered, wrong signature, wrong algorithm) collapses to nil.
// Callers treat nil as "unauthenticated" and never branch on the sub-reason.
func (m *Manager) Verify(tokenString string) *Claims {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil
	}
	return claims
}

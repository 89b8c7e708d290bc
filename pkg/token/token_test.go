package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewManager_EmptySecret(t *testing.T) {
	if _, err := NewManager(""); err != ErrNoSecret {
		t.Fatalf("expected ErrNoSecret, got %v", err)
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	m, err := NewManager("secret")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	signed, err := m.Issue("user-1", "a@b.com", "CLIENT")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims := m.Verify(signed)
	if claims == nil {
		t.Fatalf("expected claims, got nil")
	}
	if claims.UserID != "user-1" {
		t.Fatalf("unexpected userId: %s", claims.UserID)
	}
	if claims.Email != "a@b.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Role != "CLIENT" {
		t.Fatalf("unexpected role: %s", claims.Role)
	}

	exp := claims.ExpiresAt.Time
	want := time.Now().Add(TTL)
	if exp.Before(want.Add(-time.Minute)) || exp.After(want.Add(time.Minute)) {
		t.Fatalf("expiry not ~7 days out: %v", exp)
	}
}

func TestVerify_Expired(t *testing.T) {
	m, _ := NewManager("secret")

	claims := &Claims{
		UserID: "user-1",
		Email:  "a@b.com",
		Role:   "CLIENT",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if got := m.Verify(signed); got != nil {
		t.Fatalf("expected nil for expired token, got %+v", got)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer, _ := NewManager("secret-a")
	verifier, _ := NewManager("secret-b")

	signed, err := issuer.Issue("user-1", "a@b.com", "MANAGER")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if got := verifier.Verify(signed); got != nil {
		t.Fatalf("expected nil for wrong signature, got %+v", got)
	}
}

func TestVerify_Tampered(t *testing.T) {
	m, _ := NewManager("secret")
	signed, err := m.Issue("user-1", "a@b.com", "CLIENT")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	// Flip payload bytes; the signature no longer matches.
	tampered := parts[0] + "." + parts[1][:len(parts[1])-2] + "xx." + parts[2]

	if got := m.Verify(tampered); got != nil {
		t.Fatalf("expected nil for tampered token, got %+v", got)
	}
}

func TestVerify_Garbage(t *testing.T) {
	m, _ := NewManager("secret")
	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c.d", "....."} {
		if got := m.Verify(raw); got != nil {
			t.Fatalf("expected nil for %q, got %+v", raw, got)
		}
	}
}

func TestVerify_WrongAlgorithm(t *testing.T) {
	m, _ := NewManager("secret")

	// alg=none token with a valid-looking payload must be rejected.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"userId": "user-1",
		"role":   "MANAGER",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if got := m.Verify(unsigned); got != nil {
		t.Fatalf("expected nil for alg=none token, got %+v", got)
	}
}

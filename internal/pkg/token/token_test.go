package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestExpiresAt_JWTWithExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("upstream-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	got, ok := ExpiresAt(signed)
	if !ok {
		t.Fatalf("expected expiry to be readable")
	}
	if !got.Equal(exp) {
		t.Fatalf("expected %v, got %v", exp, got)
	}
}

func TestExpiresAt_JWTWithoutExpiry(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "7"})
	signed, err := tok.SignedString([]byte("upstream-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, ok := ExpiresAt(signed); ok {
		t.Fatalf("token without exp must report not ok")
	}
}

func TestExpiresAt_OpaqueToken(t *testing.T) {
	if _, ok := ExpiresAt("just-an-opaque-string"); ok {
		t.Fatalf("opaque token must report not ok")
	}
}

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signHS256(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestSecretVerifier(t *testing.T) {
	v := NewSecretVerifier("s3cret")

	tokenString := signHS256(t, "s3cret", jwt.RegisteredClaims{
		Subject:   "editor-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	claims, err := v.Verify(tokenString)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if claims.Subject != "editor-1" {
		t.Errorf("subject = %q, want editor-1", claims.Subject)
	}
}

func TestSecretVerifierRejects(t *testing.T) {
	v := NewSecretVerifier("s3cret")

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "wrong secret",
			token: signHS256(t, "other", jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}),
		},
		{
			name:  "expired",
			token: signHS256(t, "s3cret", jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))}),
		},
		{
			name:  "garbage",
			token: "not.a.token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := v.Verify(tt.token); err != ErrUnauthorized {
				t.Errorf("Verify() error = %v, want ErrUnauthorized", err)
			}
		})
	}
}

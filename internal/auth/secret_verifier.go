package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// SecretVerifier validates HS256 tokens signed with a shared secret.
type SecretVerifier struct {
	secret []byte
}

// NewSecretVerifier creates a verifier for the given shared secret.
func NewSecretVerifier(secret string) *SecretVerifier {
	return &SecretVerifier{secret: []byte(secret)}
}

// Verify validates an HS256-signed token.
func (v *SecretVerifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

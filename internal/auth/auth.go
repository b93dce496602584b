// Package auth verifies bearer tokens on the convert API. Two verifier
// implementations are provided: a shared-secret HS256 verifier and a
// JWKS-backed verifier for deployments behind an identity provider.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthorized is returned for any token that fails verification. The
// HTTP layer maps it to 401 without detail, so verification failures never
// leak why a token was rejected.
var ErrUnauthorized = errors.New("unauthorized")

// Claims are the registered JWT claims the service cares about.
type Claims struct {
	jwt.RegisteredClaims
}

// Verifier validates a bearer token and returns its claims.
type Verifier interface {
	// Verify validates tokenString. Returns ErrUnauthorized if the token
	// is invalid, expired, or signed with an unexpected algorithm.
	Verify(tokenString string) (*Claims, error)
}

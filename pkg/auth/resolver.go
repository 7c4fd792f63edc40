package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// ErrUnauthenticated means the credential was missing, malformed, expired or
// rejected by the identity collaborator. Any other error from a Resolver is
// a collaborator failure and surfaces as 500.
var ErrUnauthenticated = errors.New("authentication required")

// Resolver turns a raw bearer credential into the caller's Identity.
type Resolver interface {
	Resolve(ctx context.Context, credential string) (Identity, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, credential string) (Identity, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context, credential string) (Identity, error) {
	return f(ctx, credential)
}

const bearerPrefix = "bearer "

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func BearerToken(r *http.Request) (string, error) {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(h) <= len(bearerPrefix) || !strings.EqualFold(h[:len(bearerPrefix)], bearerPrefix) {
		return "", ErrUnauthenticated
	}
	tok := strings.TrimSpace(h[len(bearerPrefix):])
	if tok == "" {
		return "", ErrUnauthenticated
	}
	return tok, nil
}

package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/WGledhill94/loadLab/internal/domain"
)

// TokenVerifier resolves a bearer token to an identity. Side-effect free.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

type contextKey int

const identityKey contextKey = iota

// BearerAuth resolves an optional Authorization header into an Identity.
// A missing, malformed or invalid token leaves the request anonymous; it
// never rejects the request. Handlers that care pass the identity onward
// explicitly.
func BearerAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token != "" {
				if identity, err := verifier.Verify(token); err == nil {
					ctx := context.WithValue(r.Context(), identityKey, identity)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFromContext returns the resolved identity, or nil for a guest.
func IdentityFromContext(ctx context.Context) *domain.Identity {
	if identity, ok := ctx.Value(identityKey).(*domain.Identity); ok {
		return identity
	}
	return nil
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/pixelgrove/studio/pkg/jwtx"
	"github.com/pixelgrove/studio/pkg/slogx"
)

// SubjectStore re-confirms that a token's subject still exists. A deleted user
// can hold a still-valid token; the existence check closes that gap.
type SubjectStore interface {
	SubjectExists(ctx context.Context, userID string) (bool, error)
}

// AuthnMiddleware extracts and verifies the Bearer token, re-checks the
// subject against the store, and attaches the decoded claims to the request
// context. Downstream handlers read identity from the claims, not a fresh
// database row.
func AuthnMiddleware(v jwtx.Verifier, subjects SubjectStore) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				if errors.Is(err, jwtx.ErrExpired) {
					writeBearerError(w, "token has expired, please log in again")
					return
				}
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "invalid token")
				return
			}

			exists, err := subjects.SubjectExists(ctx, claims.Subject)
			if err != nil {
				log.Error("subject existence check failed", "user_id", claims.Subject, "err", err)
				WriteError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if !exists {
				writeBearerError(w, "the user belonging to this token no longer exists")
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithAuth(ctx, claims)))
		})
	}
}

// writeBearerError pairs the RFC 6750 challenge header with the JSON envelope
// clients actually consume.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, desc)
}

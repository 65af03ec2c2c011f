package service

import (
	"time"

	"github.com/pixelgrove/studio/internal/studio/domain"
	"github.com/pixelgrove/studio/pkg/jwtx"
)

// TokenService issues session tokens. Verification lives in the middleware;
// there is no revocation list, expiry is the only invalidation.
type TokenService struct {
	Signer *jwtx.HS256
	Issuer string

	// SessionTTL defaults to jwtx.DefaultSessionTTL when zero.
	SessionTTL time.Duration
}

func (s *TokenService) ttl() time.Duration {
	if s.SessionTTL <= 0 {
		return jwtx.DefaultSessionTTL
	}
	return s.SessionTTL
}

// Issue mints a signed session token for the user.
func (s *TokenService) Issue(user domain.User) (string, error) {
	claims := jwtx.NewSessionClaims(
		user.ID,
		user.Email,
		user.Role,
		s.Issuer,
		s.ttl(),
		time.Now().UTC(),
	)
	return s.Signer.Sign(claims)
}

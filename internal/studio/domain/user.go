package domain

import "time"

// Roles are the coarse authorization tags gating which endpoints a subject
// may invoke.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"

	// DefaultRole is assigned when registration does not specify one.
	DefaultRole = RoleEditor
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleEditor
}

// User is the identity and authorization record. The reset fields hold only
// the SHA-256 digest of an outstanding reset token plus its expiry; both are
// always set together or nil together.
type User struct {
	ID           string
	Email        string // unique, stored lower-cased
	Name         string
	PasswordHash string // bcrypt, never serialized in responses
	Role         string

	ResetTokenDigest *string
	ResetExpiresAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPendingReset reports whether an unredeemed reset token digest is stored
// for the user. It does not consider expiry; expiry is enforced at lookup.
func (u User) HasPendingReset() bool {
	return u.ResetTokenDigest != nil && u.ResetExpiresAt != nil
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

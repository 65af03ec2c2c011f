package store

import (
	"context"
	"errors"
	"time"

	"github.com/pixelgrove/studio/internal/studio/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories keep concerns tidy and let tests swap a
// single repo without faking the whole store.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Multi-step
	// operations that must be atomic (e.g. reset redemption) go through here.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped store.
type Tx interface {
	Users() Users
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up by their case-normalized email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByResetDigest returns the user holding an unexpired reset token
	// digest. Expired digests behave exactly like absent ones.
	GetUserByResetDigest(ctx context.Context, digest string, now time.Time) (domain.User, error)

	// ListUsers returns all users ordered by creation date (newest first).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile mutates name and email and bumps updated_at.
	UpdateProfile(ctx context.Context, userID, name, email string) error

	// UpdatePasswordHash sets the password_hash (bcrypt) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// UpdateRole changes a user's role.
	UpdateRole(ctx context.Context, userID, role string) error

	// SetResetToken stores a reset token digest and expiry, replacing any
	// pending pair.
	SetResetToken(ctx context.Context, userID, digest string, expiresAt time.Time) error

	// ClearResetToken nulls both reset fields.
	ClearResetToken(ctx context.Context, userID string) error

	// DeleteUser removes the user record.
	DeleteUser(ctx context.Context, userID string) error

	// DeleteExpiredResetTokens clears reset fields whose expiry has passed.
	// Housekeeping; redemption already enforces expiry on lookup.
	DeleteExpiredResetTokens(ctx context.Context, now time.Time) error

	// CountAdmins returns the number of admin users.
	CountAdmins(ctx context.Context) (int, error)
}

package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pixelgrove/studio/internal/studio/domain"
	"github.com/pixelgrove/studio/internal/studio/store"
)

// BootstrapService seeds the initial admin account from environment-provided
// credentials so a fresh deployment is immediately manageable.
type BootstrapService struct {
	Store store.Store
	Users *UserService
}

// EnsureAdmin creates the bootstrap admin when no admin exists yet. It is a
// no-op when an admin is already present or the credentials are unset.
func (s *BootstrapService) EnsureAdmin(ctx context.Context, logger *slog.Logger, name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	count, err := s.Store.Users().CountAdmins(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	user, err := s.Users.CreateUser(ctx, name, email, password, domain.RoleAdmin)
	if err != nil {
		// A concurrent replica may have seeded first.
		if errors.Is(err, ErrDuplicateEmail) {
			logger.Info("bootstrap admin already exists", "email", email)
			return nil
		}
		return err
	}

	logger.Info("bootstrap admin created", "user_id", user.ID, "email", user.Email)
	return nil
}

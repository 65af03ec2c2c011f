package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/pixelgrove/studio/internal/studio/domain"
	"github.com/pixelgrove/studio/internal/studio/store"
	"github.com/pixelgrove/studio/pkg/cryptox"
	"github.com/pixelgrove/studio/pkg/idx"
	"github.com/pixelgrove/studio/pkg/slogx"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	ErrDuplicateEmail = errors.New("an account with this email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	ErrInvalidRole  = errors.New("invalid role")
	ErrUserNotFound = errors.New("user not found")

	ErrSelfRoleChange = errors.New("you cannot change your own role")
	ErrSelfDelete     = errors.New("you cannot delete your own account")
)

// MinPasswordLength applies to registration, admin creation, updates, and
// reset redemption alike.
const MinPasswordLength = 8

// UserService owns the credential store operations: account creation with
// validation, password verification, and the admin-facing user management.
type UserService struct {
	Store store.Store
}

// NormalizeEmail case-normalizes an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidInput
	}
	return nil
}

// Register creates a user with the default editor role and returns it.
func (s *UserService) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	return s.create(ctx, name, email, password, domain.DefaultRole)
}

// CreateUser creates a user with an explicit role. Admin-facing.
func (s *UserService) CreateUser(ctx context.Context, name, email, password, role string) (domain.User, error) {
	if !domain.ValidRole(role) {
		return domain.User{}, ErrInvalidRole
	}
	return s.create(ctx, name, email, password, role)
}

func (s *UserService) create(ctx context.Context, name, email, password, role string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	email = NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return domain.User{}, err
	}
	if len(password) < MinPasswordLength {
		return domain.User{}, ErrInvalidInput
	}

	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration attempted with taken email", slog.String("email", email))
			return domain.User{}, ErrDuplicateEmail
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user created",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
		slog.String("role", user.Role),
	)

	return user, nil
}

// Authenticate verifies an email/password pair and returns the user. Unknown
// email and wrong password both map to ErrInvalidCredentials; the bcrypt
// compare still runs against a throwaway hash on unknown emails so timing
// does not separate the two cases either.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyPassword(password, decoyHash)
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to look up user for login", slog.Any("error", err))
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("failed login attempt", slog.String("user_id", user.ID))
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	return user, nil
}

// decoyHash is a bcrypt hash of random data, compared against when a login
// names an unknown email.
const decoyHash = "$2a$12$R5B2uz3q0eWVhrOTbjbyKOxgdOGmlBqYPs6NQsNpCGFyUHGMKwCyW"

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// ListUsers returns all users, newest first.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// UpdateUserParams carries the optional fields of an admin update. Nil fields
// are left untouched; the password is only re-hashed when actually provided.
type UpdateUserParams struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

// UpdateUser applies a partial update to a user on behalf of actorID. Role
// changes on the actor's own record are rejected.
func (s *UserService) UpdateUser(ctx context.Context, actorID, userID string, params UpdateUserParams) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if params.Role != nil {
		if !domain.ValidRole(*params.Role) {
			return domain.User{}, ErrInvalidRole
		}
		if userID == actorID && *params.Role != user.Role {
			return domain.User{}, ErrSelfRoleChange
		}
	}

	name := user.Name
	if params.Name != nil {
		name = strings.TrimSpace(*params.Name)
	}

	email := user.Email
	if params.Email != nil {
		email = NormalizeEmail(*params.Email)
		if err := validateEmail(email); err != nil {
			return domain.User{}, err
		}
	}

	var newHash string
	if params.Password != nil {
		if len(*params.Password) < MinPasswordLength {
			return domain.User{}, ErrInvalidInput
		}
		newHash, err = cryptox.HashPassword(*params.Password)
		if err != nil {
			return domain.User{}, err
		}
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if name != user.Name || email != user.Email {
			if err := tx.Users().UpdateProfile(ctx, userID, name, email); err != nil {
				if errors.Is(err, store.ErrAlreadyExists) {
					return ErrDuplicateEmail
				}
				return err
			}
		}
		if newHash != "" {
			if err := tx.Users().UpdatePasswordHash(ctx, userID, newHash); err != nil {
				return err
			}
		}
		if params.Role != nil && *params.Role != user.Role {
			if err := tx.Users().UpdateRole(ctx, userID, *params.Role); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	log.Info("user updated", slog.String("user_id", userID), slog.String("actor_id", actorID))

	return s.GetUserByID(ctx, userID)
}

// ChangeRole sets a user's role on behalf of actorID. Actors cannot change
// their own role.
func (s *UserService) ChangeRole(ctx context.Context, actorID, userID, role string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if !domain.ValidRole(role) {
		return domain.User{}, ErrInvalidRole
	}
	if actorID == userID {
		log.Warn("admin attempted to change own role", slog.String("user_id", actorID))
		return domain.User{}, ErrSelfRoleChange
	}

	if err := s.Store.Users().UpdateRole(ctx, userID, role); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}

	log.Info("user role changed",
		slog.String("user_id", userID),
		slog.String("role", role),
		slog.String("actor_id", actorID),
	)

	return s.GetUserByID(ctx, userID)
}

// DeleteUser removes a user on behalf of actorID. Actors cannot delete their
// own account.
func (s *UserService) DeleteUser(ctx context.Context, actorID, userID string) error {
	log := slogx.FromContext(ctx)

	if actorID == userID {
		log.Warn("admin attempted to delete own account", slog.String("user_id", actorID))
		return ErrSelfDelete
	}

	if err := s.Store.Users().DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	log.Info("user deleted", slog.String("user_id", userID), slog.String("actor_id", actorID))
	return nil
}

// SubjectExists satisfies the authentication middleware's existence re-check
// for token subjects.
func (s *UserService) SubjectExists(ctx context.Context, userID string) (bool, error) {
	_, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

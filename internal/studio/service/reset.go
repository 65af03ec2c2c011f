package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pixelgrove/studio/internal/studio/domain"
	"github.com/pixelgrove/studio/internal/studio/store"
	"github.com/pixelgrove/studio/pkg/cryptox"
	"github.com/pixelgrove/studio/pkg/slogx"
)

// ErrResetTokenInvalid deliberately covers both a wrong token and an expired
// one, so a response cannot reveal which case occurred.
var ErrResetTokenInvalid = errors.New("reset token is invalid or has expired")

// DefaultResetTokenTTL bounds how long an emailed reset link stays usable.
const DefaultResetTokenTTL = 10 * time.Minute

// ResetService mediates the password-reset flow. Only a SHA-256 digest of the
// token is ever stored; the plaintext exists once, inside the emailed link.
type ResetService struct {
	Store store.Store

	// TokenTTL defaults to DefaultResetTokenTTL when zero.
	TokenTTL time.Duration
}

func (s *ResetService) ttl() time.Duration {
	if s.TokenTTL <= 0 {
		return DefaultResetTokenTTL
	}
	return s.TokenTTL
}

// Begin generates a reset token for the account with the given email, stores
// its digest and expiry on the user, and returns the plaintext token for the
// caller to email. Calling Begin again overwrites any pending digest, which
// silently invalidates a previously emailed token; newest wins.
func (s *ResetService) Begin(ctx context.Context, email string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrUserNotFound
		}
		log.Error("failed to look up user for password reset", slog.Any("error", err))
		return domain.User{}, "", err
	}

	token, err := cryptox.GenerateToken(cryptox.ResetTokenBytes)
	if err != nil {
		log.Error("failed to generate reset token", slog.Any("error", err))
		return domain.User{}, "", err
	}

	digest := cryptox.FingerprintToken(token)
	expiresAt := time.Now().UTC().Add(s.ttl())

	if err := s.Store.Users().SetResetToken(ctx, user.ID, digest, expiresAt); err != nil {
		log.Error("failed to store reset token digest",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return domain.User{}, "", err
	}

	log.Info("password reset started",
		slog.String("user_id", user.ID),
		slog.Time("expires_at", expiresAt),
	)

	return user, token, nil
}

// Clear removes a pending reset. Called when the reset email could not be
// delivered after Begin succeeded, so the user can retry from a clean state
// instead of being stuck with an unreachable pending token.
func (s *ResetService) Clear(ctx context.Context, userID string) error {
	err := s.Store.Users().ClearResetToken(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

// Redeem validates a plaintext reset token and sets the new password. The
// password update and the clearing of the reset fields commit atomically, so
// a redeemed token can never be replayed.
func (s *ResetService) Redeem(ctx context.Context, token, newPassword string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if token == "" {
		return domain.User{}, ErrResetTokenInvalid
	}
	if len(newPassword) < MinPasswordLength {
		return domain.User{}, ErrInvalidInput
	}

	digest := cryptox.FingerprintToken(token)
	now := time.Now().UTC()

	user, err := s.Store.Users().GetUserByResetDigest(ctx, digest, now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("password reset attempted with invalid or expired token")
			return domain.User{}, ErrResetTokenInvalid
		}
		log.Error("failed to look up reset token digest", slog.Any("error", err))
		return domain.User{}, err
	}

	newHash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		log.Error("failed to hash new password", slog.Any("error", err))
		return domain.User{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePasswordHash(ctx, user.ID, newHash); err != nil {
			return err
		}
		return tx.Users().ClearResetToken(ctx, user.ID)
	})
	if err != nil {
		log.Error("failed to redeem reset token",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	log.Info("password reset completed", slog.String("user_id", user.ID))

	user.PasswordHash = newHash
	user.ResetTokenDigest = nil
	user.ResetExpiresAt = nil
	return user, nil
}

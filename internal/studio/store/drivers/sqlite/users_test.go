package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/pixelgrove/studio/internal/studio/domain"
	"github.com/pixelgrove/studio/internal/studio/store"
	"github.com/pixelgrove/studio/internal/studio/store/drivers/sqlite"
	"github.com/pixelgrove/studio/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st *sqlite.Store, email, role string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         "Test User",
		PasswordHash: "$2a$12$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
		Role:         role,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func TestCreateAndGetUser(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	created := seedUser(t, st, "alice@example.com", domain.RoleEditor)

	t.Run("by id", func(t *testing.T) {
		got, err := st.Users().GetUserByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created.Email, got.Email)
		require.Equal(t, domain.RoleEditor, got.Role)
		require.False(t, got.HasPendingReset())
		require.False(t, got.CreatedAt.IsZero())
	})

	t.Run("by email", func(t *testing.T) {
		got, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, created.ID, got.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := st.Users().GetUserByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := created
		dup.ID = idx.New().String()
		err := st.Users().CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("duplicate email different case", func(t *testing.T) {
		dup := created
		dup.ID = idx.New().String()
		dup.Email = "ALICE@example.com"
		err := st.Users().CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestResetTokenLifecycle(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	u := seedUser(t, st, "bob@example.com", domain.RoleEditor)

	digest := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	require.NoError(t, st.Users().SetResetToken(ctx, u.ID, digest, now.Add(10*time.Minute)))

	t.Run("lookup finds unexpired digest", func(t *testing.T) {
		got, err := st.Users().GetUserByResetDigest(ctx, digest, now)
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
		require.True(t, got.HasPendingReset())
	})

	t.Run("lookup misses expired digest", func(t *testing.T) {
		_, err := st.Users().GetUserByResetDigest(ctx, digest, now.Add(11*time.Minute))
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("second set replaces the pending digest", func(t *testing.T) {
		newer := "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
		require.NoError(t, st.Users().SetResetToken(ctx, u.ID, newer, now.Add(10*time.Minute)))

		_, err := st.Users().GetUserByResetDigest(ctx, digest, now)
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err := st.Users().GetUserByResetDigest(ctx, newer, now)
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
	})

	t.Run("clear removes both fields", func(t *testing.T) {
		require.NoError(t, st.Users().ClearResetToken(ctx, u.ID))

		got, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Nil(t, got.ResetTokenDigest)
		require.Nil(t, got.ResetExpiresAt)
	})
}

func TestDeleteExpiredResetTokens(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	stale := seedUser(t, st, "stale@example.com", domain.RoleEditor)
	fresh := seedUser(t, st, "fresh@example.com", domain.RoleEditor)

	require.NoError(t, st.Users().SetResetToken(ctx, stale.ID, "digest-stale", now.Add(-time.Minute)))
	require.NoError(t, st.Users().SetResetToken(ctx, fresh.ID, "digest-fresh", now.Add(10*time.Minute)))

	require.NoError(t, st.Users().DeleteExpiredResetTokens(ctx, now))

	got, err := st.Users().GetUserByID(ctx, stale.ID)
	require.NoError(t, err)
	require.False(t, got.HasPendingReset())

	got, err = st.Users().GetUserByID(ctx, fresh.ID)
	require.NoError(t, err)
	require.True(t, got.HasPendingReset())
}

func TestUpdateAndDelete(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, st, "carol@example.com", domain.RoleEditor)

	t.Run("update profile", func(t *testing.T) {
		require.NoError(t, st.Users().UpdateProfile(ctx, u.ID, "Carol", "carol@agency.dev"))

		got, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "Carol", got.Name)
		require.Equal(t, "carol@agency.dev", got.Email)
	})

	t.Run("update role", func(t *testing.T) {
		require.NoError(t, st.Users().UpdateRole(ctx, u.ID, domain.RoleAdmin))

		count, err := st.Users().CountAdmins(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("updates on missing users report not found", func(t *testing.T) {
		err := st.Users().UpdatePasswordHash(ctx, idx.New().String(), "hash")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, st.Users().DeleteUser(ctx, u.ID))

		_, err := st.Users().GetUserByID(ctx, u.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		require.ErrorIs(t, st.Users().DeleteUser(ctx, u.ID), store.ErrNotFound)
	})
}

func TestListUsersNewestFirst(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	seedUser(t, st, "first@example.com", domain.RoleEditor)
	seedUser(t, st, "second@example.com", domain.RoleAdmin)

	users, err := st.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "second@example.com", users[0].Email)
	require.Equal(t, "first@example.com", users[1].Email)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, st, "dave@example.com", domain.RoleEditor)

	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePasswordHash(ctx, u.ID, "new-hash"); err != nil {
			return err
		}
		return context.Canceled // force rollback
	})
	require.Error(t, err)

	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.PasswordHash, got.PasswordHash)
}

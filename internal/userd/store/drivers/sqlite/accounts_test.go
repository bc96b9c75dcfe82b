package sqlite_test

import (
	"context"
	"testing"

	"github.com/sablevale/userd/internal/userd/domain"
	"github.com/sablevale/userd/internal/userd/store"
	"github.com/sablevale/userd/internal/userd/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func testAccount(id, email, username string) domain.Account {
	return domain.Account{
		ID:           id,
		Email:        email,
		Username:     username,
		FirstName:    "First",
		LastName:     "Last",
		PasswordHash: "$2a$10$notarealhashbutlongenough",
		Role:         3,
	}
}

func TestAccountsCRUD(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	accounts := s.Accounts()

	acct := testAccount("01HZX0001", "crud@example.com", "crud")
	require.NoError(t, accounts.Create(ctx, acct))

	t.Run("get by id, email and username agree", func(t *testing.T) {
		byID, err := accounts.GetByID(ctx, acct.ID)
		require.NoError(t, err)
		require.Equal(t, acct.Email, byID.Email)
		require.False(t, byID.CreatedAt.IsZero())

		byEmail, err := accounts.GetByEmail(ctx, acct.Email)
		require.NoError(t, err)
		require.Equal(t, acct.ID, byEmail.ID)

		byUsername, err := accounts.GetByUsername(ctx, acct.Username)
		require.NoError(t, err)
		require.Equal(t, acct.ID, byUsername.ID)
	})

	t.Run("lookups miss with ErrNotFound", func(t *testing.T) {
		_, err := accounts.GetByID(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = accounts.GetByEmail(ctx, "missing@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = accounts.GetByUsername(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update rewrites every profile field", func(t *testing.T) {
		patch := domain.ProfilePatch{
			Email:     "crud2@example.com",
			Username:  "crud2",
			FirstName: "Second",
			LastName:  "Name",
			Role:      1,
			Allow:     true,
		}
		require.NoError(t, accounts.Update(ctx, acct.ID, patch, ""))

		got, err := accounts.GetByID(ctx, acct.ID)
		require.NoError(t, err)
		require.Equal(t, "crud2@example.com", got.Email)
		require.Equal(t, "crud2", got.Username)
		require.Equal(t, 1, got.Role)
		require.True(t, got.Allow)
		// Empty newHash keeps the credential.
		require.Equal(t, acct.PasswordHash, got.PasswordHash)
	})

	t.Run("update with a new hash replaces the credential", func(t *testing.T) {
		patch := domain.ProfilePatch{Email: "crud2@example.com", Username: "crud2", Role: 1, Allow: true}
		require.NoError(t, accounts.Update(ctx, acct.ID, patch, "new-hash"))

		got, err := accounts.GetByID(ctx, acct.ID)
		require.NoError(t, err)
		require.Equal(t, "new-hash", got.PasswordHash)
	})

	t.Run("set allow flips the flag", func(t *testing.T) {
		require.NoError(t, accounts.SetAllow(ctx, acct.ID, false))

		got, err := accounts.GetByID(ctx, acct.ID)
		require.NoError(t, err)
		require.False(t, got.Allow)

		require.ErrorIs(t, accounts.SetAllow(ctx, "missing", true), store.ErrNotFound)
	})

	t.Run("reset password revokes allow in the same statement", func(t *testing.T) {
		require.NoError(t, accounts.SetAllow(ctx, acct.ID, true))
		require.NoError(t, accounts.ResetPassword(ctx, "crud2@example.com", "reset-hash"))

		got, err := accounts.GetByID(ctx, acct.ID)
		require.NoError(t, err)
		require.Equal(t, "reset-hash", got.PasswordHash)
		require.False(t, got.Allow)

		require.ErrorIs(t, accounts.ResetPassword(ctx, "missing@example.com", "x"), store.ErrNotFound)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, accounts.Delete(ctx, acct.ID))

		_, err := accounts.GetByID(ctx, acct.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		require.ErrorIs(t, accounts.Delete(ctx, acct.ID), store.ErrNotFound)
	})
}

func TestUniqueConstraints(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	accounts := s.Accounts()

	require.NoError(t, accounts.Create(ctx, testAccount("01HZX0010", "taken@example.com", "taken")))

	t.Run("duplicate email on insert", func(t *testing.T) {
		err := accounts.Create(ctx, testAccount("01HZX0011", "taken@example.com", "other"))
		require.ErrorIs(t, err, store.ErrEmailTaken)
	})

	t.Run("duplicate username on insert", func(t *testing.T) {
		err := accounts.Create(ctx, testAccount("01HZX0012", "other@example.com", "taken"))
		require.ErrorIs(t, err, store.ErrUsernameTaken)
	})

	t.Run("update onto a taken identity", func(t *testing.T) {
		require.NoError(t, accounts.Create(ctx, testAccount("01HZX0013", "second@example.com", "second")))

		patch := domain.ProfilePatch{Email: "taken@example.com", Username: "second", Role: 3}
		require.ErrorIs(t, accounts.Update(ctx, "01HZX0013", patch, ""), store.ErrEmailTaken)

		patch = domain.ProfilePatch{Email: "second@example.com", Username: "taken", Role: 3}
		require.ErrorIs(t, accounts.Update(ctx, "01HZX0013", patch, ""), store.ErrUsernameTaken)
	})
}

func TestListAndIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	accounts := s.Accounts()

	empty, err := accounts.IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	list, err := accounts.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	require.NoError(t, accounts.Create(ctx, testAccount("01HZX0020", "one@example.com", "one")))
	require.NoError(t, accounts.Create(ctx, testAccount("01HZX0021", "two@example.com", "two")))

	empty, err = accounts.IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)

	list, err = accounts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

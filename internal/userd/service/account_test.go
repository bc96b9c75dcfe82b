package service_test

import (
	"context"
	"testing"

	"github.com/sablevale/userd/internal/userd/domain"
	"github.com/sablevale/userd/internal/userd/service"
	"github.com/sablevale/userd/pkg/passwd"
	"github.com/stretchr/testify/require"
)

func TestAccountLifecycle(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &service.AccountService{Store: st}

	acct := seedAccount(t, st, "erin@example.com", "erin", "hunter22", 3, false)

	t.Run("approve activates the account", func(t *testing.T) {
		require.NoError(t, svc.Approve(ctx, acct.ID))

		got, err := svc.Get(ctx, acct.ID)
		require.NoError(t, err)
		require.True(t, got.Allow)
	})

	t.Run("approve unknown account", func(t *testing.T) {
		require.ErrorIs(t, svc.Approve(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV"), service.ErrAccountNotFound)
	})

	t.Run("update rewrites the profile without touching the credential", func(t *testing.T) {
		patch := domain.ProfilePatch{
			Email:     "erin@example.com",
			Username:  "erin",
			FirstName: "Erin",
			LastName:  "Moved",
			Role:      2,
			Allow:     true,
		}
		require.NoError(t, svc.UpdateProfile(ctx, acct.ID, patch))

		got, err := svc.Get(ctx, acct.ID)
		require.NoError(t, err)
		require.Equal(t, "Moved", got.LastName)
		require.Equal(t, 2, got.Role)
		require.True(t, passwd.Verify("hunter22", got.PasswordHash))
	})

	t.Run("update with password replaces the hash", func(t *testing.T) {
		patch := domain.ProfilePatch{
			Email:    "erin@example.com",
			Username: "erin",
			Role:     2,
			Allow:    true,
			Password: "newpassword",
		}
		require.NoError(t, svc.UpdateProfile(ctx, acct.ID, patch))

		got, err := svc.Get(ctx, acct.ID)
		require.NoError(t, err)
		require.False(t, passwd.Verify("hunter22", got.PasswordHash))
		require.True(t, passwd.Verify("newpassword", got.PasswordHash))
		// A profile update never revokes activation; only a self-service
		// credential reset does.
		require.True(t, got.Allow)
	})

	t.Run("update onto a taken email", func(t *testing.T) {
		seedAccount(t, st, "frank@example.com", "frank", "hunter22", 3, true)

		patch := domain.ProfilePatch{
			Email:    "frank@example.com",
			Username: "erin",
			Role:     2,
			Allow:    true,
		}
		require.ErrorIs(t, svc.UpdateProfile(ctx, acct.ID, patch), service.ErrEmailTaken)
	})

	t.Run("reset credentials for unknown email", func(t *testing.T) {
		err := svc.ResetCredentials(ctx, "nobody@example.com", "whatever")
		require.ErrorIs(t, err, service.ErrAccountNotFound)
	})

	t.Run("delete is terminal", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, acct.ID))

		_, err := svc.Get(ctx, acct.ID)
		require.ErrorIs(t, err, service.ErrAccountNotFound)

		require.ErrorIs(t, svc.Delete(ctx, acct.ID), service.ErrAccountNotFound)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &service.AccountService{Store: st}

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, got)

	seedAccount(t, st, "a@example.com", "a-user", "hunter22", 3, true)
	seedAccount(t, st, "b@example.com", "b-user", "hunter22", 2, false)

	got, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestBootstrap(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	svc := &service.BootstrapService{
		Store: st,
		Admin: service.SuperAdmin{
			Email:     "root@example.com",
			Username:  "root",
			FirstName: "Root",
			LastName:  "Admin",
			Password:  "changeme",
		},
	}

	created, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	require.True(t, created)

	acct, err := st.Accounts().GetByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	require.Equal(t, domain.RoleSuperAdmin, acct.Role)
	require.True(t, acct.Allow)
	require.True(t, passwd.Verify("changeme", acct.PasswordHash))

	t.Run("second call is a no-op", func(t *testing.T) {
		created, err := svc.Bootstrap(ctx)
		require.NoError(t, err)
		require.False(t, created)
	})
}

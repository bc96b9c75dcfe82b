package service_test

import (
	"context"
	"testing"

	"github.com/sablevale/userd/internal/userd/domain"
	"github.com/sablevale/userd/internal/userd/store"
	"github.com/sablevale/userd/internal/userd/store/drivers/sqlite"
	"github.com/sablevale/userd/pkg/idx"
	"github.com/sablevale/userd/pkg/passwd"
	"github.com/stretchr/testify/require"
)

// newTestStore spins up a migrated in-memory sqlite store.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

// seedAccount inserts an account with a real bcrypt hash of password and
// returns it.
func seedAccount(t *testing.T, s store.Store, email, username, password string, role int, allow bool) domain.Account {
	t.Helper()

	hash, err := passwd.Hash(password)
	require.NoError(t, err)

	acct := domain.Account{
		ID:           idx.New().String(),
		Email:        email,
		Username:     username,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: hash,
		Role:         role,
		Allow:        allow,
	}
	require.NoError(t, s.Accounts().Create(context.Background(), acct))
	return acct
}

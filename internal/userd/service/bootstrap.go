package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sablevale/userd/internal/userd/domain"
	"github.com/sablevale/userd/internal/userd/store"
	"github.com/sablevale/userd/pkg/idx"
	"github.com/sablevale/userd/pkg/passwd"
	"github.com/sablevale/userd/pkg/slogx"
)

// SuperAdmin is the configured identity seeded as the role-0 account.
type SuperAdmin struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// BootstrapService seeds the single super-admin so a fresh deployment
// has an identity that can approve everyone else.
type BootstrapService struct {
	Store store.Store
	Admin SuperAdmin
}

// Bootstrap creates the super-admin account if it does not exist yet.
// Returns false without error when the identity is already present, so
// the endpoint is safe to call repeatedly.
func (s *BootstrapService) Bootstrap(ctx context.Context) (bool, error) {
	l := slogx.FromContext(ctx)

	_, err := s.Store.Accounts().GetByEmail(ctx, s.Admin.Email)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, store.ErrNotFound):
		return false, fmt.Errorf("bootstrap lookup: %w", err)
	}

	_, err = s.Store.Accounts().GetByUsername(ctx, s.Admin.Username)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, store.ErrNotFound):
		return false, fmt.Errorf("bootstrap lookup: %w", err)
	}

	hash, err := passwd.Hash(s.Admin.Password)
	if err != nil {
		return false, fmt.Errorf("hash bootstrap credential: %w", err)
	}

	acct := domain.Account{
		ID:           idx.New().String(),
		Email:        s.Admin.Email,
		Username:     s.Admin.Username,
		FirstName:    s.Admin.FirstName,
		LastName:     s.Admin.LastName,
		PasswordHash: hash,
		Role:         domain.RoleSuperAdmin,
		Allow:        true,
	}

	if err := s.Store.Accounts().Create(ctx, acct); err != nil {
		// Lost a race with a concurrent bootstrap; the constraint says
		// the admin exists, which is the outcome we wanted.
		if errors.Is(err, store.ErrEmailTaken) || errors.Is(err, store.ErrUsernameTaken) {
			return false, nil
		}
		return false, fmt.Errorf("create super-admin: %w", err)
	}

	l.Info("super-admin seeded", slog.String("account_id", acct.ID))
	return true, nil
}

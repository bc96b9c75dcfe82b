package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sablevale/userd/internal/userd/domain"
	"github.com/sablevale/userd/internal/userd/store"
	"github.com/sablevale/userd/pkg/passwd"
	"github.com/sablevale/userd/pkg/slogx"
)

var ErrAccountNotFound = errors.New("account_not_found")

// AccountService governs the account lifecycle after registration:
// approval, profile rewrites, credential resets and deletion.
type AccountService struct {
	Store store.Store
}

// Approve flips a pending account to active so it may authenticate.
func (s *AccountService) Approve(ctx context.Context, id string) error {
	err := s.Store.Accounts().SetAllow(ctx, id, true)
	if errors.Is(err, store.ErrNotFound) {
		return ErrAccountNotFound
	}
	return err
}

// ResetCredentials replaces the stored credential for the account with
// this email and revokes activation in the same update. A credential
// change always invalidates trust until the account is re-approved; this
// is the pre-authentication recovery flow, so no current credential is
// required.
func (s *AccountService) ResetCredentials(ctx context.Context, email, newPassword string) error {
	hash, err := passwd.Hash(newPassword)
	if err != nil {
		return ErrWeakCredential
	}

	err = s.Store.Accounts().ResetPassword(ctx, email, hash)
	if errors.Is(err, store.ErrNotFound) {
		return ErrAccountNotFound
	}
	if err == nil {
		slogx.FromContext(ctx).Info("credentials reset, approval revoked", slog.String("email", email))
	}
	return err
}

// UpdateProfile rewrites the account's profile fields as a single
// combined update. A non-empty patch password is rehashed and stored in
// the same statement. Activation is whatever the patch says: admin
// updates set allow explicitly and never revoke it implicitly, only
// ResetCredentials does that.
func (s *AccountService) UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) error {
	var newHash string
	if patch.Password != "" {
		var err error
		newHash, err = passwd.Hash(patch.Password)
		if err != nil {
			return ErrWeakCredential
		}
	}

	err := s.Store.Accounts().Update(ctx, id, patch, newHash)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrAccountNotFound
	case errors.Is(err, store.ErrEmailTaken):
		return ErrEmailTaken
	case errors.Is(err, store.ErrUsernameTaken):
		return ErrUsernameTaken
	case err != nil:
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// Delete removes the account. No soft-delete; this is terminal.
func (s *AccountService) Delete(ctx context.Context, id string) error {
	err := s.Store.Accounts().Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrAccountNotFound
	}
	return err
}

// Get fetches a single account by id.
func (s *AccountService) Get(ctx context.Context, id string) (domain.Account, error) {
	acct, err := s.Store.Accounts().GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Account{}, ErrAccountNotFound
	}
	return acct, err
}

// List returns every account, newest first.
func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	return s.Store.Accounts().List(ctx)
}

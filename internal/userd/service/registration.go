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
	"github.com/sablevale/userd/pkg/tokenx"
)

var (
	ErrEmailTaken    = errors.New("already_registered_by_email")
	ErrUsernameTaken = errors.New("already_registered_by_username")

	// ErrLookupFailed marks a store failure during uniqueness
	// resolution. It is a registration failure in its own right: an
	// unreachable store is never a green light to insert.
	ErrLookupFailed = errors.New("registration_lookup_failed")

	// ErrWeakCredential covers a password the hasher refuses.
	ErrWeakCredential = errors.New("weak_credential")
)

// Registration is the validated signup input. Field shape and length
// checks happen at the HTTP boundary before this struct is built.
type Registration struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
	Role      int
}

type RegistrationService struct {
	Store store.Store
	Codec tokenx.Codec
}

// Register resolves uniqueness, hashes the credential and persists the
// account. autoActivate distinguishes the two creation paths: the
// self-service path stores allow=false and issues a session token for
// the new identity; the administrative path stores allow=true and
// returns no token, since the admin is acting on someone else's behalf.
func (s *RegistrationService) Register(ctx context.Context, req Registration, autoActivate bool) (domain.Session, error) {
	l := slogx.FromContext(ctx)

	// Fast-path pre-check, email before username so an email collision
	// wins even when both fields collide. The unique constraints on
	// insert below remain the authoritative guarantee.
	if err := s.resolveUniqueness(ctx, req.Email, req.Username); err != nil {
		return domain.Session{}, err
	}

	hash, err := passwd.Hash(req.Password)
	if err != nil {
		return domain.Session{}, ErrWeakCredential
	}

	acct := domain.Account{
		ID:           idx.New().String(),
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		Role:         req.Role,
		Allow:        autoActivate,
	}

	if err := s.Store.Accounts().Create(ctx, acct); err != nil {
		switch {
		case errors.Is(err, store.ErrEmailTaken):
			return domain.Session{}, ErrEmailTaken
		case errors.Is(err, store.ErrUsernameTaken):
			return domain.Session{}, ErrUsernameTaken
		}
		return domain.Session{}, fmt.Errorf("create account: %w", err)
	}

	l.Info("account registered",
		slog.String("account_id", acct.ID),
		slog.Int("role", acct.Role),
		slog.Bool("auto_activate", autoActivate),
	)

	if autoActivate {
		// Admin path: acknowledge without a token.
		return domain.Session{AccountID: acct.ID, Role: acct.Role}, nil
	}

	token, err := s.Codec.Issue(acct.ID, acct.Role)
	if err != nil {
		return domain.Session{}, fmt.Errorf("issue session token: %w", err)
	}

	return domain.Session{
		Token:     token,
		AccountID: acct.ID,
		Role:      acct.Role,
	}, nil
}

// resolveUniqueness classifies the registration attempt: email collision,
// username collision, or clear to insert. Store failure folds into
// ErrLookupFailed, never into "not found".
func (s *RegistrationService) resolveUniqueness(ctx context.Context, email, username string) error {
	_, err := s.Store.Accounts().GetByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrEmailTaken
	case !errors.Is(err, store.ErrNotFound):
		return ErrLookupFailed
	}

	_, err = s.Store.Accounts().GetByUsername(ctx, username)
	switch {
	case err == nil:
		return ErrUsernameTaken
	case !errors.Is(err, store.ErrNotFound):
		return ErrLookupFailed
	}

	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sablevale/userd/internal/userd/domain"
	"github.com/sablevale/userd/internal/userd/store"
	"github.com/sablevale/userd/pkg/passwd"
	"github.com/sablevale/userd/pkg/slogx"
	"github.com/sablevale/userd/pkg/tokenx"
)

var (
	ErrWrongLogin    = errors.New("wrong_login")
	ErrWrongPassword = errors.New("wrong_password")
	ErrNotPermit     = errors.New("not_permit")
)

type LoginService struct {
	Store store.Store
	Codec tokenx.Codec
}

// Login runs the credential pipeline: account lookup, password check,
// activation gate, token issuance. The pipeline is strictly ordered:
// a later check is never reached once an earlier one fails, and each
// failure is terminal for the call.
func (s *LoginService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	l := slogx.FromContext(ctx)

	acct, err := s.Store.Accounts().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrWrongLogin
		}
		return domain.Session{}, fmt.Errorf("login lookup: %w", err)
	}

	if !passwd.Verify(password, acct.PasswordHash) {
		l.Info("login password mismatch", "account_id", acct.ID)
		return domain.Session{}, ErrWrongPassword
	}

	// Correct credentials are not enough: the account has to be approved
	// before it may hold a session.
	if !acct.Allow {
		return domain.Session{}, ErrNotPermit
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

package store

import (
	"context"
	"errors"

	"github.com/sablevale/userd/internal/userd/domain"
)

var (
	ErrNotFound = errors.New("store: not found")

	// ErrEmailTaken and ErrUsernameTaken are returned by Create (and
	// Update when it rewrites identity fields) on a unique-constraint
	// violation. The schema constraint is the authoritative uniqueness
	// guarantee; the registration pre-check is only a fast path.
	ErrEmailTaken    = errors.New("store: email already registered")
	ErrUsernameTaken = errors.New("store: username already registered")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. Every operation is a single-document point
// operation; callers get atomicity per statement and nothing more.
type Store interface {
	Accounts() Accounts

	ApplyMigrations() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

type Accounts interface {
	// GetByID returns an account by its id.
	GetByID(ctx context.Context, id string) (domain.Account, error)

	// GetByEmail is the login lookup.
	GetByEmail(ctx context.Context, email string) (domain.Account, error)

	// GetByUsername is used during registration uniqueness resolution.
	GetByUsername(ctx context.Context, username string) (domain.Account, error)

	// Create inserts a new account (id is provided by the app via ULID).
	// Returns ErrEmailTaken or ErrUsernameTaken on constraint violation.
	Create(ctx context.Context, a domain.Account) error

	// Update rewrites the profile fields of an account. newHash replaces
	// the stored credential when non-empty, otherwise the hash is kept.
	Update(ctx context.Context, id string, p domain.ProfilePatch, newHash string) error

	// SetAllow flips the activation flag.
	SetAllow(ctx context.Context, id string, allow bool) error

	// ResetPassword replaces the credential by email and forces
	// allow=false in the same statement. A credential reset always
	// revokes trust until the account is re-approved.
	ResetPassword(ctx context.Context, email string, newHash string) error

	// Delete removes the account. Immediate and irreversible.
	Delete(ctx context.Context, id string) error

	// List returns every account, newest first.
	List(ctx context.Context) ([]domain.Account, error)

	// IsEmpty reports whether there are no accounts.
	IsEmpty(ctx context.Context) (bool, error)
}

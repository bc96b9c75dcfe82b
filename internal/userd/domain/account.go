package domain

import "time"

// Role tiers. Role 0 is reserved for the single super-admin seeded at
// bootstrap; 1 and 2 are ordinary admin tiers. Anything above that is a
// regular account with no administrative privileges.
const (
	RoleSuperAdmin = 0
)

type Account struct {
	ID           string
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string // bcrypt encoded, never the plaintext
	Role         int
	Allow        bool // false until the account is approved for login
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfilePatch carries a full profile rewrite for an account. All identity
// fields are set wholesale; Password is optional and, when non-empty, is
// rehashed and stored in the same update. Activation comes solely from
// Allow; profile updates never revoke trust implicitly, only the
// self-service credential reset does.
type ProfilePatch struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Role      int
	Allow     bool
	Password  string // plaintext; empty means keep the current hash
}

// Session is the result of a successful authentication: a signed token
// plus the identity it was minted for. Role is frozen at issuance time.
type Session struct {
	Token     string
	AccountID string
	Role      int
}

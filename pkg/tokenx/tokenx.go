// Package tokenx signs and verifies the short-lived session tokens the
// service hands out after a successful authentication. Tokens are HS256
// JWTs; validity is purely a function of the MAC and the exp claim, there
// is no server-side revocation.
package tokenx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the session token lifetime when none is configured.
const DefaultTTL = time.Hour

// ErrInvalidToken is the single verification failure. Bad signature,
// malformed structure and expiry all collapse into it so callers cannot
// tell which check failed.
var ErrInvalidToken = errors.New("tokenx: invalid token")

// Claims is the signed payload: the account the token was minted for and
// the role frozen at issuance time. A later role change is not reflected
// until the token expires and a new one is issued.
type Claims struct {
	jwt.RegisteredClaims

	UserID string `json:"user_id"`
	Role   int    `json:"role"`
}

// Codec issues and verifies session tokens with a shared symmetric secret.
type Codec struct {
	Secret []byte
	TTL    time.Duration
}

// Issue builds claims expiring TTL from now and signs them.
func (c Codec) Issue(accountID string, role int) (string, error) {
	ttl := c.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: accountID,
		Role:   role,
	})

	return token.SignedString(c.Secret)
}

// Verify checks MAC integrity and expiry and returns the claims. Any
// failure is ErrInvalidToken, uniformly.
func (c Codec) Verify(raw string) (Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.Secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	if claims.UserID == "" {
		return Claims{}, ErrInvalidToken
	}

	return *claims, nil
}

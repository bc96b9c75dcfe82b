package http

import (
	"time"

	"github.com/sablevale/userd/internal/userd/domain"
)

type successResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userID"`
	Role   int    `json:"role"`
}

// accountResponse is the admin-facing view of an account. The stored
// credential never leaves the server.
type accountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      int       `json:"role"`
	Allow     bool      `json:"allow"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toAccountResponse(a domain.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Username:  a.Username,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Role:      a.Role,
		Allow:     a.Allow,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

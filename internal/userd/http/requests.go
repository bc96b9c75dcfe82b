package http

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Field length bounds for the request boundary. Password tops out at 72
// because bcrypt ignores anything past 72 bytes.
const (
	minPasswordLen = 5
	maxPasswordLen = 72
	minUsernameLen = 3
	maxUsernameLen = 64
	maxNameLen     = 64
	maxEmailLen    = 254
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email, validation.Length(0, maxEmailLen)),
		validation.Field(&r.Password, validation.Required, validation.Length(minPasswordLen, maxPasswordLen)),
	)
}

type registrationRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	Role      int    `json:"role"`
}

func (r registrationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email, validation.Length(0, maxEmailLen)),
		validation.Field(&r.Username, validation.Required, validation.Length(minUsernameLen, maxUsernameLen)),
		validation.Field(&r.FirstName, validation.Length(0, maxNameLen)),
		validation.Field(&r.LastName, validation.Length(0, maxNameLen)),
		validation.Field(&r.Password, validation.Required, validation.Length(minPasswordLen, maxPasswordLen)),
		validation.Field(&r.Role, validation.Min(0)),
	)
}

type passwordResetRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

func (r passwordResetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email, validation.Length(0, maxEmailLen)),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(minPasswordLen, maxPasswordLen)),
	)
}

type accountChangeRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      int    `json:"role"`
	Allow     bool   `json:"allow"`
	Password  string `json:"password"` // empty keeps the current credential
}

func (r accountChangeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email, validation.Length(0, maxEmailLen)),
		validation.Field(&r.Username, validation.Required, validation.Length(minUsernameLen, maxUsernameLen)),
		validation.Field(&r.FirstName, validation.Length(0, maxNameLen)),
		validation.Field(&r.LastName, validation.Length(0, maxNameLen)),
		validation.Field(&r.Password, validation.Length(minPasswordLen, maxPasswordLen)),
		validation.Field(&r.Role, validation.Min(0)),
	)
}

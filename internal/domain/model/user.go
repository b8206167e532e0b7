//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/medidea/medidea-api/internal/domain/auth"
)

const (
	maxEmailLen = 255
	maxNameLen  = 255
)

// User is an account that can authenticate against the API.
// IDs are integers because the user identifier is embedded in issued tokens.
type User struct {
	ID           int64     `json:"id"            db:"id"`
	Email        string    `json:"email"         db:"email"`
	PasswordHash string    `json:"-"             db:"password_hash"`
	Name         string    `json:"name"          db:"name"`
	Role         auth.Role `json:"role"          db:"role"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"    db:"updated_at"`
}

// CreateUserRequest carries input for creating a user.
// Password is hashed at the service layer; repos only see the hash.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Validate checks the create request fields.
func (r *CreateUserRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if _, ok := auth.ParseRole(r.Role); !ok {
		return errors.New("role must be one of: admin, tecnico, user")
	}
	return nil
}

// UpdateUserRequest carries optional field updates for a user.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// Validate checks the update request fields that are present.
func (r *UpdateUserRequest) Validate() error {
	if r.Email != nil {
		if err := validateEmail(*r.Email); err != nil {
			return err
		}
	}
	if r.Password != nil && len(*r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if r.Role != nil {
		if _, ok := auth.ParseRole(*r.Role); !ok {
			return errors.New("role must be one of: admin, tecnico, user")
		}
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}
	if len(email) > maxEmailLen {
		return errors.New("email is too long")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errors.New("email is invalid")
	}
	return nil
}

package model

import (
	"errors"
	"strings"
	"time"
)

// Technician is a field worker who performs service activities.
type Technician struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	Email     string    `json:"email"      db:"email"`
	Phone     string    `json:"phone"      db:"phone"`
	Specialty string    `json:"specialty"  db:"specialty"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateTechnicianRequest carries input for creating a technician.
type CreateTechnicianRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
}

// Validate checks the create request fields.
func (r *CreateTechnicianRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	return nil
}

// UpdateTechnicianRequest carries optional field updates for a technician.
type UpdateTechnicianRequest struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
}

// Validate checks the update request fields that are present.
func (r *UpdateTechnicianRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if r.Email != nil {
		if err := validateEmail(*r.Email); err != nil {
			return err
		}
	}
	return nil
}

package model

import (
	"errors"
	"strings"
	"time"
)

// Customer is a client site that owns equipment and receives service visits.
type Customer struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	Address   string    `json:"address"    db:"address"`
	City      string    `json:"city"       db:"city"`
	Phone     string    `json:"phone"      db:"phone"`
	Email     string    `json:"email"      db:"email"`
	Notes     string    `json:"notes"      db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateCustomerRequest carries input for creating a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Notes   string `json:"notes"`
}

// Validate checks the create request fields.
func (r *CreateCustomerRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required")
	}
	if len(name) > maxNameLen {
		return errors.New("name is too long")
	}
	if r.Email != "" {
		if err := validateEmail(r.Email); err != nil {
			return err
		}
	}
	return nil
}

// UpdateCustomerRequest carries optional field updates for a customer.
type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// Validate checks the update request fields that are present.
func (r *UpdateCustomerRequest) Validate() error {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return errors.New("name cannot be empty")
		}
		if len(name) > maxNameLen {
			return errors.New("name is too long")
		}
	}
	if r.Email != nil && *r.Email != "" {
		if err := validateEmail(*r.Email); err != nil {
			return err
		}
	}
	return nil
}

// CustomersListOptions controls paging and filtering for listing customers.
// Q matches name via ILIKE substring; City matches exactly.
type CustomersListOptions struct {
	Limit  int
	Offset int
	Q      *string
	City   *string
}

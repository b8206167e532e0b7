package model

import (
	"errors"
	"strings"
	"time"
)

// Equipment is a device installed at a customer site.
type Equipment struct {
	ID           string     `json:"id"            db:"id"`
	CustomerID   string     `json:"customer_id"   db:"customer_id"`
	Name         string     `json:"name"          db:"name"`
	Brand        string     `json:"brand"         db:"brand"`
	Model        string     `json:"model"         db:"model"`
	SerialNumber string     `json:"serial_number" db:"serial_number"`
	InstalledAt  *time.Time `json:"installed_at"  db:"installed_at"`
	Notes        string     `json:"notes"         db:"notes"`
	CreatedAt    time.Time  `json:"created_at"    db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"    db:"updated_at"`
}

// CreateEquipmentRequest carries input for registering equipment.
type CreateEquipmentRequest struct {
	CustomerID   string     `json:"customer_id"`
	Name         string     `json:"name"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	SerialNumber string     `json:"serial_number"`
	InstalledAt  *time.Time `json:"installed_at"`
	Notes        string     `json:"notes"`
}

// Validate checks the create request fields.
func (r *CreateEquipmentRequest) Validate() error {
	if strings.TrimSpace(r.CustomerID) == "" {
		return errors.New("customer_id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(r.SerialNumber) == "" {
		return errors.New("serial_number is required")
	}
	return nil
}

// UpdateEquipmentRequest carries optional field updates for equipment.
type UpdateEquipmentRequest struct {
	Name         *string    `json:"name,omitempty"`
	Brand        *string    `json:"brand,omitempty"`
	Model        *string    `json:"model,omitempty"`
	SerialNumber *string    `json:"serial_number,omitempty"`
	InstalledAt  *time.Time `json:"installed_at,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

// Validate checks the update request fields that are present.
func (r *UpdateEquipmentRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if r.SerialNumber != nil && strings.TrimSpace(*r.SerialNumber) == "" {
		return errors.New("serial_number cannot be empty")
	}
	return nil
}

// EquipmentListOptions controls paging and filtering for listing equipment.
type EquipmentListOptions struct {
	Limit      int
	Offset     int
	CustomerID *string
	Q          *string // substring match on name or serial number (ILIKE)
}

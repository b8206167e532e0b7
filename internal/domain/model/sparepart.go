package model

import (
	"errors"
	"strings"
	"time"
)

// SparePart is a stocked part consumed by service activities.
type SparePart struct {
	ID             string    `json:"id"               db:"id"`
	Code           string    `json:"code"             db:"code"`
	Name           string    `json:"name"             db:"name"`
	Quantity       int       `json:"quantity"         db:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents" db:"unit_price_cents"`
	MinQuantity    int       `json:"min_quantity"     db:"min_quantity"`
	CreatedAt      time.Time `json:"created_at"       db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"       db:"updated_at"`
}

// BelowMinimum reports whether the stock level is under the reorder threshold.
func (p SparePart) BelowMinimum() bool { return p.Quantity < p.MinQuantity }

// CreateSparePartRequest carries input for creating a spare part.
type CreateSparePartRequest struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	MinQuantity    int    `json:"min_quantity"`
}

// Validate checks the create request fields.
func (r *CreateSparePartRequest) Validate() error {
	if strings.TrimSpace(r.Code) == "" {
		return errors.New("code is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if r.Quantity < 0 {
		return errors.New("quantity cannot be negative")
	}
	if r.UnitPriceCents < 0 {
		return errors.New("unit_price_cents cannot be negative")
	}
	if r.MinQuantity < 0 {
		return errors.New("min_quantity cannot be negative")
	}
	return nil
}

// UpdateSparePartRequest carries optional field updates for a spare part.
type UpdateSparePartRequest struct {
	Code           *string `json:"code,omitempty"`
	Name           *string `json:"name,omitempty"`
	Quantity       *int    `json:"quantity,omitempty"`
	UnitPriceCents *int64  `json:"unit_price_cents,omitempty"`
	MinQuantity    *int    `json:"min_quantity,omitempty"`
}

// Validate checks the update request fields that are present.
func (r *UpdateSparePartRequest) Validate() error {
	if r.Code != nil && strings.TrimSpace(*r.Code) == "" {
		return errors.New("code cannot be empty")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if r.Quantity != nil && *r.Quantity < 0 {
		return errors.New("quantity cannot be negative")
	}
	if r.UnitPriceCents != nil && *r.UnitPriceCents < 0 {
		return errors.New("unit_price_cents cannot be negative")
	}
	if r.MinQuantity != nil && *r.MinQuantity < 0 {
		return errors.New("min_quantity cannot be negative")
	}
	return nil
}

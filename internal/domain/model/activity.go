package model

import (
	"errors"
	"strings"
	"time"
)

// ActivityKind classifies a service activity.
type ActivityKind string

const (
	ActivityKindInstallation ActivityKind = "installation"
	ActivityKindMaintenance  ActivityKind = "maintenance"
	ActivityKindRepair       ActivityKind = "repair"
)

// Valid reports whether the activity kind is supported.
func (k ActivityKind) Valid() bool {
	switch k {
	case ActivityKindInstallation, ActivityKindMaintenance, ActivityKindRepair:
		return true
	default:
		return false
	}
}

// ActivityStatus tracks the lifecycle of a service activity.
type ActivityStatus string

const (
	ActivityStatusOpen       ActivityStatus = "open"
	ActivityStatusInProgress ActivityStatus = "in_progress"
	ActivityStatusClosed     ActivityStatus = "closed"
)

// Valid reports whether the activity status is supported.
func (s ActivityStatus) Valid() bool {
	switch s {
	case ActivityStatusOpen, ActivityStatusInProgress, ActivityStatusClosed:
		return true
	default:
		return false
	}
}

// ParseActivityStatus normalizes a status string and reports whether it is supported.
func ParseActivityStatus(value string) (ActivityStatus, bool) {
	s := ActivityStatus(strings.ToLower(strings.TrimSpace(value)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// Activity is a scheduled or completed service visit for a customer,
// optionally tied to a piece of equipment and an assigned technician.
type Activity struct {
	ID           string         `json:"id"            db:"id"`
	CustomerID   string         `json:"customer_id"   db:"customer_id"`
	EquipmentID  *string        `json:"equipment_id"  db:"equipment_id"`
	TechnicianID *string        `json:"technician_id" db:"technician_id"`
	Kind         ActivityKind   `json:"kind"          db:"kind"`
	Status       ActivityStatus `json:"status"        db:"status"`
	ScheduledAt  time.Time      `json:"scheduled_at"  db:"scheduled_at"`
	CompletedAt  *time.Time     `json:"completed_at"  db:"completed_at"`
	Description  string         `json:"description"   db:"description"`
	Report       string         `json:"report"        db:"report"`
	CreatedAt    time.Time      `json:"created_at"    db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"    db:"updated_at"`
}

// CreateActivityRequest carries input for creating an activity.
type CreateActivityRequest struct {
	CustomerID   string       `json:"customer_id"`
	EquipmentID  *string      `json:"equipment_id"`
	TechnicianID *string      `json:"technician_id"`
	Kind         ActivityKind `json:"kind"`
	ScheduledAt  time.Time    `json:"scheduled_at"`
	Description  string       `json:"description"`
}

// Validate checks the create request fields.
func (r *CreateActivityRequest) Validate() error {
	if strings.TrimSpace(r.CustomerID) == "" {
		return errors.New("customer_id is required")
	}
	if !r.Kind.Valid() {
		return errors.New("kind must be one of: installation, maintenance, repair")
	}
	if r.ScheduledAt.IsZero() {
		return errors.New("scheduled_at is required")
	}
	return nil
}

// UpdateActivityRequest carries optional field updates for an activity.
// Setting Status to closed stamps completed_at at the repository.
type UpdateActivityRequest struct {
	EquipmentID  *string         `json:"equipment_id,omitempty"`
	TechnicianID *string         `json:"technician_id,omitempty"`
	Kind         *ActivityKind   `json:"kind,omitempty"`
	Status       *ActivityStatus `json:"status,omitempty"`
	ScheduledAt  *time.Time      `json:"scheduled_at,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Report       *string         `json:"report,omitempty"`
}

// Validate checks the update request fields that are present.
func (r *UpdateActivityRequest) Validate() error {
	if r.Kind != nil && !r.Kind.Valid() {
		return errors.New("kind must be one of: installation, maintenance, repair")
	}
	if r.Status != nil && !r.Status.Valid() {
		return errors.New("status must be one of: open, in_progress, closed")
	}
	return nil
}

// ActivitiesListOptions controls paging and filtering for listing activities.
type ActivitiesListOptions struct {
	Limit        int
	Offset       int
	CustomerID   *string
	TechnicianID *string
	Status       *ActivityStatus
}

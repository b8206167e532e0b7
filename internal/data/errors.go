package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserEmailExists = errors.New("user email already exists")

	ErrCustomerNotFound = errors.New("customer not found")

	ErrEquipmentNotFound     = errors.New("equipment not found")
	ErrEquipmentSerialExists = errors.New("equipment serial number already exists")

	ErrTechnicianNotFound    = errors.New("technician not found")
	ErrTechnicianEmailExists = errors.New("technician email already exists")

	ErrActivityNotFound = errors.New("activity not found")

	ErrSparePartNotFound   = errors.New("spare part not found")
	ErrSparePartCodeExists = errors.New("spare part code already exists")
	ErrInsufficientStock   = errors.New("insufficient stock")

	ErrAttachmentNotFound = errors.New("attachment not found")
)

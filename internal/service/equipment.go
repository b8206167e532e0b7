package service

import (
	"context"

	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/ports"
)

// EquipmentServiceOptions groups dependencies for EquipmentService.
type EquipmentServiceOptions struct {
	Equipment ports.EquipmentRepository
}

// EquipmentService manages equipment records.
type EquipmentService struct {
	equipment ports.EquipmentRepository
}

// NewEquipmentService constructs a new EquipmentService.
func NewEquipmentService(opts EquipmentServiceOptions) *EquipmentService {
	return &EquipmentService{equipment: opts.Equipment}
}

// Create registers a piece of equipment for a customer.
func (s *EquipmentService) Create(ctx context.Context, req *model.CreateEquipmentRequest) (*model.Equipment, error) {
	return s.equipment.Create(ctx, req)
}

// GetByID retrieves equipment by ID.
func (s *EquipmentService) GetByID(ctx context.Context, id string) (*model.Equipment, error) {
	return s.equipment.GetByID(ctx, id)
}

// List returns a page of equipment with optional filters.
func (s *EquipmentService) List(ctx context.Context, opts model.EquipmentListOptions) ([]*model.Equipment, error) {
	return s.equipment.List(ctx, opts)
}

// Update applies field updates to equipment.
func (s *EquipmentService) Update(ctx context.Context, id string, req *model.UpdateEquipmentRequest) (*model.Equipment, error) {
	return s.equipment.Update(ctx, id, req)
}

// Delete removes equipment by ID.
func (s *EquipmentService) Delete(ctx context.Context, id string) (bool, error) {
	return s.equipment.Delete(ctx, id)
}

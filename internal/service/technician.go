package service

import (
	"context"

	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/ports"
)

// TechnicianServiceOptions groups dependencies for TechnicianService.
type TechnicianServiceOptions struct {
	Technicians ports.TechnicianRepository
}

// TechnicianService manages technician records.
type TechnicianService struct {
	technicians ports.TechnicianRepository
}

// NewTechnicianService constructs a new TechnicianService.
func NewTechnicianService(opts TechnicianServiceOptions) *TechnicianService {
	return &TechnicianService{technicians: opts.Technicians}
}

// Create creates a technician.
func (s *TechnicianService) Create(ctx context.Context, req *model.CreateTechnicianRequest) (*model.Technician, error) {
	return s.technicians.Create(ctx, req)
}

// GetByID retrieves a technician by ID.
func (s *TechnicianService) GetByID(ctx context.Context, id string) (*model.Technician, error) {
	return s.technicians.GetByID(ctx, id)
}

// List returns a page of technicians.
func (s *TechnicianService) List(ctx context.Context, limit, offset int) ([]*model.Technician, error) {
	return s.technicians.List(ctx, limit, offset)
}

// Update applies field updates to a technician.
func (s *TechnicianService) Update(ctx context.Context, id string, req *model.UpdateTechnicianRequest) (*model.Technician, error) {
	return s.technicians.Update(ctx, id, req)
}

// Delete removes a technician; their past activities keep a NULL assignee.
func (s *TechnicianService) Delete(ctx context.Context, id string) (bool, error) {
	return s.technicians.Delete(ctx, id)
}

package service

import (
	"context"

	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/ports"
)

// SparePartServiceOptions groups dependencies for SparePartService.
type SparePartServiceOptions struct {
	Parts ports.SparePartRepository
}

// SparePartService manages spare parts stock.
type SparePartService struct {
	parts ports.SparePartRepository
}

// NewSparePartService constructs a new SparePartService.
func NewSparePartService(opts SparePartServiceOptions) *SparePartService {
	return &SparePartService{parts: opts.Parts}
}

// Create creates a spare part.
func (s *SparePartService) Create(ctx context.Context, req *model.CreateSparePartRequest) (*model.SparePart, error) {
	return s.parts.Create(ctx, req)
}

// GetByID retrieves a spare part by ID.
func (s *SparePartService) GetByID(ctx context.Context, id string) (*model.SparePart, error) {
	return s.parts.GetByID(ctx, id)
}

// List returns a page of spare parts ordered by code.
func (s *SparePartService) List(ctx context.Context, limit, offset int) ([]*model.SparePart, error) {
	return s.parts.List(ctx, limit, offset)
}

// Update applies field updates to a spare part.
func (s *SparePartService) Update(ctx context.Context, id string, req *model.UpdateSparePartRequest) (*model.SparePart, error) {
	return s.parts.Update(ctx, id, req)
}

// AdjustQuantity atomically changes the stock level of a spare part by
// delta. Adjustments that would drive the quantity negative are rejected.
func (s *SparePartService) AdjustQuantity(ctx context.Context, id string, delta int) (*model.SparePart, error) {
	return s.parts.AdjustQuantity(ctx, id, delta)
}

// Delete removes a spare part by ID.
func (s *SparePartService) Delete(ctx context.Context, id string) (bool, error) {
	return s.parts.Delete(ctx, id)
}

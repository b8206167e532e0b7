package service

import (
	"context"

	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/ports"
)

// ActivityServiceOptions groups dependencies for ActivityService.
type ActivityServiceOptions struct {
	Activities ports.ActivityRepository
}

// ActivityService manages service activities.
type ActivityService struct {
	activities ports.ActivityRepository
}

// NewActivityService constructs a new ActivityService.
func NewActivityService(opts ActivityServiceOptions) *ActivityService {
	return &ActivityService{activities: opts.Activities}
}

// Create schedules a new activity; it always starts open.
func (s *ActivityService) Create(ctx context.Context, req *model.CreateActivityRequest) (*model.Activity, error) {
	return s.activities.Create(ctx, req)
}

// GetByID retrieves an activity by ID.
func (s *ActivityService) GetByID(ctx context.Context, id string) (*model.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

// List returns a page of activities with optional filters.
func (s *ActivityService) List(ctx context.Context, opts model.ActivitiesListOptions) ([]*model.Activity, error) {
	return s.activities.List(ctx, opts)
}

// Update applies field updates; closing stamps completion at the repository.
func (s *ActivityService) Update(ctx context.Context, id string, req *model.UpdateActivityRequest) (*model.Activity, error) {
	return s.activities.Update(ctx, id, req)
}

// Delete removes an activity and its attachment metadata.
func (s *ActivityService) Delete(ctx context.Context, id string) (bool, error) {
	return s.activities.Delete(ctx, id)
}

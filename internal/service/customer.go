package service

import (
	"context"

	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/ports"
)

// CustomerServiceOptions groups dependencies for CustomerService.
type CustomerServiceOptions struct {
	Customers ports.CustomerRepository
}

// CustomerService manages customer records.
type CustomerService struct {
	customers ports.CustomerRepository
}

// NewCustomerService constructs a new CustomerService.
func NewCustomerService(opts CustomerServiceOptions) *CustomerService {
	return &CustomerService{customers: opts.Customers}
}

// Create creates a customer.
func (s *CustomerService) Create(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error) {
	return s.customers.Create(ctx, req)
}

// GetByID retrieves a customer by ID.
func (s *CustomerService) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// List returns a page of customers with optional filters.
func (s *CustomerService) List(ctx context.Context, opts model.CustomersListOptions) ([]*model.Customer, error) {
	return s.customers.List(ctx, opts)
}

// Update applies field updates to a customer.
func (s *CustomerService) Update(ctx context.Context, id string, req *model.UpdateCustomerRequest) (*model.Customer, error) {
	return s.customers.Update(ctx, id, req)
}

// Delete removes a customer and, through the schema, its equipment and activities.
func (s *CustomerService) Delete(ctx context.Context, id string) (bool, error) {
	return s.customers.Delete(ctx, id)
}

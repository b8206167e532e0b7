package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/ports"
)

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	Users ports.UserRepository
}

// UserService manages accounts. Password hashing happens here so the
// repository layer only ever sees bcrypt hashes.
type UserService struct {
	users ports.UserRepository
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	return &UserService{users: opts.Users}
}

// Create hashes the password and stores a new account.
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if req == nil {
		return nil, fmt.Errorf("create user request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.users.Create(ctx, req, string(hash))
}

// GetByID retrieves an account by ID.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// List returns a page of accounts.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]*model.User, error) {
	return s.users.List(ctx, limit, offset)
}

// Update applies field updates, rehashing the password when one is supplied.
func (s *UserService) Update(ctx context.Context, id int64, req *model.UpdateUserRequest) (*model.User, error) {
	if req == nil {
		return nil, fmt.Errorf("update user request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var hash *string
	if req.Password != nil {
		h, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hs := string(h)
		hash = &hs
	}
	return s.users.Update(ctx, id, req, hash)
}

// Delete removes an account by ID.
func (s *UserService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.users.Delete(ctx, id)
}

// Package mocks provides mock implementations for testing service and HTTP layers.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockUserRepository(ctrl)
//	mockRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
package mocks

// Generate mock for UserRepository interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/medidea/medidea-api/internal/ports UserRepository

// Generate mock for CustomerRepository interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=customer_repository_mock.go github.com/medidea/medidea-api/internal/ports CustomerRepository

// Generate mock for ActivityRepository interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=activity_repository_mock.go github.com/medidea/medidea-api/internal/ports ActivityRepository

// Generate mock for AttachmentRepository interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=attachment_repository_mock.go github.com/medidea/medidea-api/internal/ports AttachmentRepository

// Generate mock for TokenAuthority interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=token_authority_mock.go github.com/medidea/medidea-api/internal/ports TokenAuthority

// Generate mock for BlobStore interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=blob_store_mock.go github.com/medidea/medidea-api/internal/ports BlobStore

// Generate mock for SparePartRepository interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=sparepart_repository_mock.go github.com/medidea/medidea-api/internal/ports SparePartRepository

// Generate mock for the rate limit Store interface from internal/domain/ratelimit.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=rate_store_mock.go github.com/medidea/medidea-api/internal/domain/ratelimit Store

package ports

import (
	"context"

	"github.com/medidea/medidea-api/internal/domain/model"
)

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, req *model.CreateUserRequest, passwordHash string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, limit, offset int) ([]*model.User, error)
	Update(ctx context.Context, id int64, req *model.UpdateUserRequest, passwordHash *string) (*model.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CustomerRepository persists customers.
type CustomerRepository interface {
	Create(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error)
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	List(ctx context.Context, opts model.CustomersListOptions) ([]*model.Customer, error)
	Update(ctx context.Context, id string, req *model.UpdateCustomerRequest) (*model.Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// EquipmentRepository persists equipment records.
type EquipmentRepository interface {
	Create(ctx context.Context, req *model.CreateEquipmentRequest) (*model.Equipment, error)
	GetByID(ctx context.Context, id string) (*model.Equipment, error)
	List(ctx context.Context, opts model.EquipmentListOptions) ([]*model.Equipment, error)
	Update(ctx context.Context, id string, req *model.UpdateEquipmentRequest) (*model.Equipment, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// TechnicianRepository persists technicians.
type TechnicianRepository interface {
	Create(ctx context.Context, req *model.CreateTechnicianRequest) (*model.Technician, error)
	GetByID(ctx context.Context, id string) (*model.Technician, error)
	List(ctx context.Context, limit, offset int) ([]*model.Technician, error)
	Update(ctx context.Context, id string, req *model.UpdateTechnicianRequest) (*model.Technician, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ActivityRepository persists service activities.
type ActivityRepository interface {
	Create(ctx context.Context, req *model.CreateActivityRequest) (*model.Activity, error)
	GetByID(ctx context.Context, id string) (*model.Activity, error)
	List(ctx context.Context, opts model.ActivitiesListOptions) ([]*model.Activity, error)
	Update(ctx context.Context, id string, req *model.UpdateActivityRequest) (*model.Activity, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// SparePartRepository persists spare parts stock.
type SparePartRepository interface {
	Create(ctx context.Context, req *model.CreateSparePartRequest) (*model.SparePart, error)
	GetByID(ctx context.Context, id string) (*model.SparePart, error)
	List(ctx context.Context, limit, offset int) ([]*model.SparePart, error)
	Update(ctx context.Context, id string, req *model.UpdateSparePartRequest) (*model.SparePart, error)
	AdjustQuantity(ctx context.Context, id string, delta int) (*model.SparePart, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// AttachmentRepository persists attachment metadata.
type AttachmentRepository interface {
	Create(ctx context.Context, req *model.CreateAttachmentRequest) (*model.Attachment, error)
	GetByID(ctx context.Context, id string) (*model.Attachment, error)
	ListByActivity(ctx context.Context, activityID string) ([]*model.Attachment, error)
	Delete(ctx context.Context, id string) (bool, error)
}

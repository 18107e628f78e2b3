package storage

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/model"
)

// TenantReader defines tenant read operations
type TenantReader interface {
	ListTenants(ctx context.Context, page Page) ([]model.Tenant, int64, error)
	FindTenantByID(ctx context.Context, id uuid.UUID) (*model.Tenant, error)
}

// CustomerReader defines customer read operations
type CustomerReader interface {
	ListCustomers(ctx context.Context, filter CustomerFilter, page Page) ([]model.Customer, int64, error)
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
}

// ThreadReader defines thread read operations
type ThreadReader interface {
	ListThreads(ctx context.Context, filter ThreadFilter, page Page) ([]model.Thread, int64, error)
	FindThreadByID(ctx context.Context, id uuid.UUID) (*model.Thread, error)
}

// MessageReader defines message read operations
type MessageReader interface {
	ListMessages(ctx context.Context, filter MessageFilter, page Page) ([]model.Message, int64, error)
	FindMessageByID(ctx context.Context, id uuid.UUID) (*model.Message, error)
}

// EventReader defines event read operations
type EventReader interface {
	ListEvents(ctx context.Context, filter EventFilter, page Page) ([]model.Event, int64, error)
	FindEventByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
}

// LabelReader defines label read operations
type LabelReader interface {
	ListLabels(ctx context.Context, filter LabelFilter, page Page) ([]model.Label, int64, error)
	FindLabelByID(ctx context.Context, id uuid.UUID) (*model.Label, error)
}

// Reader bundles all entity readers, as implemented by PostgresRepo.
type Reader interface {
	TenantReader
	CustomerReader
	ThreadReader
	MessageReader
	EventReader
	LabelReader
}

package mock

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/model"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/storage"
)

// ReaderMock is a testify mock implementing storage.Reader for handler tests.
type ReaderMock struct {
	mock.Mock
}

// NewReaderMock creates a new ReaderMock instance.
func NewReaderMock() *ReaderMock {
	return &ReaderMock{}
}

func (m *ReaderMock) ListTenants(ctx context.Context, page storage.Page) ([]model.Tenant, int64, error) {
	args := m.Called(ctx, page)
	var tenants []model.Tenant
	if args.Get(0) != nil {
		tenants = args.Get(0).([]model.Tenant)
	}
	return tenants, args.Get(1).(int64), args.Error(2)
}

func (m *ReaderMock) FindTenantByID(ctx context.Context, id uuid.UUID) (*model.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tenant), args.Error(1)
}

func (m *ReaderMock) ListCustomers(ctx context.Context, filter storage.CustomerFilter, page storage.Page) ([]model.Customer, int64, error) {
	args := m.Called(ctx, filter, page)
	var customers []model.Customer
	if args.Get(0) != nil {
		customers = args.Get(0).([]model.Customer)
	}
	return customers, args.Get(1).(int64), args.Error(2)
}

func (m *ReaderMock) FindCustomerByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *ReaderMock) ListThreads(ctx context.Context, filter storage.ThreadFilter, page storage.Page) ([]model.Thread, int64, error) {
	args := m.Called(ctx, filter, page)
	var threads []model.Thread
	if args.Get(0) != nil {
		threads = args.Get(0).([]model.Thread)
	}
	return threads, args.Get(1).(int64), args.Error(2)
}

func (m *ReaderMock) FindThreadByID(ctx context.Context, id uuid.UUID) (*model.Thread, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Thread), args.Error(1)
}

func (m *ReaderMock) ListMessages(ctx context.Context, filter storage.MessageFilter, page storage.Page) ([]model.Message, int64, error) {
	args := m.Called(ctx, filter, page)
	var messages []model.Message
	if args.Get(0) != nil {
		messages = args.Get(0).([]model.Message)
	}
	return messages, args.Get(1).(int64), args.Error(2)
}

func (m *ReaderMock) FindMessageByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

func (m *ReaderMock) ListEvents(ctx context.Context, filter storage.EventFilter, page storage.Page) ([]model.Event, int64, error) {
	args := m.Called(ctx, filter, page)
	var events []model.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]model.Event)
	}
	return events, args.Get(1).(int64), args.Error(2)
}

func (m *ReaderMock) FindEventByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *ReaderMock) ListLabels(ctx context.Context, filter storage.LabelFilter, page storage.Page) ([]model.Label, int64, error) {
	args := m.Called(ctx, filter, page)
	var labels []model.Label
	if args.Get(0) != nil {
		labels = args.Get(0).([]model.Label)
	}
	return labels, args.Get(1).(int64), args.Error(2)
}

func (m *ReaderMock) FindLabelByID(ctx context.Context, id uuid.UUID) (*model.Label, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Label), args.Error(1)
}

// HealthCheckerMock is a testify mock for dependency health probes.
type HealthCheckerMock struct {
	mock.Mock
}

func (m *HealthCheckerMock) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

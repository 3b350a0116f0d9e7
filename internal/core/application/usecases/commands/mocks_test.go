package commands_test

import (
	"context"
	"testing"
	"time"

	"transcription/internal/core/application/usecases/commands"
	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/file"
	"transcription/internal/core/domain/model/invoice"
	"transcription/internal/core/domain/model/job"
	"transcription/internal/core/domain/model/kernel"
	"transcription/internal/core/domain/model/order"
	"transcription/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByFileID(ctx context.Context, fileID string) (*order.Order, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAwaitingScreening(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllOverdueApprovals(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, a *job.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, a *job.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Assignment), args.Error(1)
}

func (m *MockJobRepository) GetActiveByOrderAndType(
	ctx context.Context, orderID kernel.UUID, jobType job.Type,
) (*job.Assignment, error) {
	args := m.Called(ctx, orderID, jobType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Assignment), args.Error(1)
}

func (m *MockJobRepository) GetAllActiveByOrder(ctx context.Context, orderID kernel.UUID) ([]*job.Assignment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Assignment), args.Error(1)
}

func (m *MockJobRepository) GetAllByTranscriber(ctx context.Context, transcriberID kernel.UUID) ([]*job.Assignment, error) {
	args := m.Called(ctx, transcriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Assignment), args.Error(1)
}

type MockFileRepository struct{ mock.Mock }

func (m *MockFileRepository) Add(ctx context.Context, f *file.File) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFileRepository) Update(ctx context.Context, f *file.File) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFileRepository) Get(ctx context.Context, id string) (*file.File, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*file.File), args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, i *invoice.Invoice) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, i *invoice.Invoice) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) JobAssignmentRepository() ports.JobAssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.JobAssignmentRepository)
}

func (m *MockUoW) FileRepository() ports.FileRepository {
	args := m.Called()
	return args.Get(0).(ports.FileRepository)
}

func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderJobUoWFactory struct{ mock.Mock }

func (m *MockOrderJobUoWFactory) Create() commands.OrderJobUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderJobUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockDeliverOrderUoWFactory struct{ mock.Mock }

func (m *MockDeliverOrderUoWFactory) Create() commands.DeliverOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliverOrderUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) SendMail(ctx context.Context, template, recipient string, data map[string]string) error {
	args := m.Called(ctx, template, recipient, data)
	return args.Error(0)
}

func (m *MockNotifier) SendAlert(ctx context.Context, subject, body string) error {
	args := m.Called(ctx, subject, body)
	return args.Error(0)
}

type MockJobQueue struct{ mock.Mock }

func (m *MockJobQueue) Enqueue(ctx context.Context, queue string, payload []byte) error {
	args := m.Called(ctx, queue, payload)
	return args.Error(0)
}

// Test fixtures shared by the handler tests.

func omPrincipal(t *testing.T) auth.Principal {
	t.Helper()
	p, err := auth.NewPrincipal(kernel.NewUUID(), auth.RoleOM)
	require.NoError(t, err)
	return p
}

func customerPrincipal(t *testing.T, id kernel.UUID) auth.Principal {
	t.Helper()
	p, err := auth.NewPrincipal(id, auth.RoleCustomer)
	require.NoError(t, err)
	return p
}

func transcriberPrincipal(t *testing.T, id kernel.UUID) auth.Principal {
	t.Helper()
	p, err := auth.NewPrincipal(id, auth.RoleTranscriber)
	require.NoError(t, err)
	return p
}

func orderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	o, err := order.RestoreOrder(order.Record{
		ID:         kernel.NewUUID(),
		FileID:     "f-100",
		CustomerID: kernel.NewUUID(),
		OrderType:  order.TypeTranscription,
		Status:     status,
		DeliveryTs: now.Add(72 * time.Hour),
		CreatedAt:  now.Add(-time.Hour),
		UpdatedAt:  now,
	})
	require.NoError(t, err)
	return o
}

func assignmentInStatus(t *testing.T, orderID kernel.UUID, jobType job.Type, status job.Status) *job.Assignment {
	t.Helper()
	a, err := job.RestoreAssignment(job.Record{
		ID:            kernel.NewUUID(),
		OrderID:       orderID,
		TranscriberID: kernel.NewUUID(),
		JobType:       jobType,
		Status:        status,
		AcceptedTs:    time.Now().UTC().Add(-time.Hour),
	})
	require.NoError(t, err)
	return a
}

func convertedFile(t *testing.T, id string, ownerID kernel.UUID) *file.File {
	t.Helper()
	f, err := file.RestoreFile(file.Record{
		ID:        id,
		OwnerID:   ownerID,
		Filename:  "interview.mp3",
		Duration:  600,
		Converted: true,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return f
}

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"eventsupply/internal/core/application/usecases/commands"
	"eventsupply/internal/core/domain/model/credential"
	"eventsupply/internal/core/domain/model/evidence"
	"eventsupply/internal/core/domain/model/inventory"
	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/core/domain/model/order"
	"eventsupply/internal/core/ports"

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
func (m *MockOrderRepository) UpdateStatusFrom(ctx context.Context, o *order.Order, from order.Status) error {
	args := m.Called(ctx, o, from)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
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

type MockCredentialRepository struct{ mock.Mock }

func (m *MockCredentialRepository) Add(ctx context.Context, c *credential.Credential) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCredentialRepository) GetLatest(ctx context.Context, phone kernel.Phone, purpose credential.Purpose) (*credential.Credential, error) {
	args := m.Called(ctx, phone, purpose)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credential.Credential), args.Error(1)
}
func (m *MockCredentialRepository) Claim(ctx context.Context, id kernel.UUID, now time.Time) error {
	args := m.Called(ctx, id, now)
	return args.Error(0)
}
func (m *MockCredentialRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockInventoryLedger struct{ mock.Mock }

func (m *MockInventoryLedger) CheckAvailability(ctx context.Context, demands []inventory.Demand) ([]inventory.Shortfall, error) {
	args := m.Called(ctx, demands)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Shortfall), args.Error(1)
}
func (m *MockInventoryLedger) Deduct(ctx context.Context, demands []inventory.Demand) error {
	args := m.Called(ctx, demands)
	return args.Error(0)
}
func (m *MockInventoryLedger) Restore(ctx context.Context, demands []inventory.Demand) error {
	args := m.Called(ctx, demands)
	return args.Error(0)
}
func (m *MockInventoryLedger) GetLine(ctx context.Context, productRef kernel.UUID) (*inventory.Line, error) {
	args := m.Called(ctx, productRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Line), args.Error(1)
}
func (m *MockInventoryLedger) UpsertLine(ctx context.Context, line *inventory.Line) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

type MockEvidenceRepository struct{ mock.Mock }

func (m *MockEvidenceRepository) AddPhoto(ctx context.Context, photo *evidence.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}
func (m *MockEvidenceRepository) AddConfirmation(ctx context.Context, record *evidence.ConfirmationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockEvidenceRepository) GetConfirmation(ctx context.Context, orderID kernel.UUID, phase evidence.ConfirmationPhase) (*evidence.ConfirmationRecord, error) {
	args := m.Called(ctx, orderID, phase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*evidence.ConfirmationRecord), args.Error(1)
}
func (m *MockEvidenceRepository) GetPhotos(ctx context.Context, orderID kernel.UUID) ([]*evidence.Photo, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*evidence.Photo), args.Error(1)
}

type MockNotificationGateway struct{ mock.Mock }

func (m *MockNotificationGateway) Send(ctx context.Context, phone kernel.Phone, message string) error {
	args := m.Called(ctx, phone, message)
	return args.Error(0)
}

// MockUoW satisfies every unit-of-work shape the handlers depend on.
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
func (m *MockUoW) CredentialRepository() ports.CredentialRepository {
	args := m.Called()
	return args.Get(0).(ports.CredentialRepository)
}
func (m *MockUoW) InventoryLedger() ports.InventoryLedger {
	args := m.Called()
	return args.Get(0).(ports.InventoryLedger)
}
func (m *MockUoW) EvidenceRepository() ports.EvidenceRepository {
	args := m.Called()
	return args.Get(0).(ports.EvidenceRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCredentialUoWFactory struct{ mock.Mock }

func (m *MockCredentialUoWFactory) Create() commands.CredentialUoW {
	args := m.Called()
	return args.Get(0).(commands.CredentialUoW)
}

type MockGatedTransitionUoWFactory struct{ mock.Mock }

func (m *MockGatedTransitionUoWFactory) Create() commands.GatedTransitionUoW {
	args := m.Called()
	return args.Get(0).(commands.GatedTransitionUoW)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockEvidenceUoWFactory struct{ mock.Mock }

func (m *MockEvidenceUoWFactory) Create() commands.EvidenceUoW {
	args := m.Called()
	return args.Get(0).(commands.EvidenceUoW)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPhone(t *testing.T) kernel.Phone {
	t.Helper()
	phone, err := kernel.NewPhone("+15551234567")
	require.NoError(t, err)
	return phone
}

// orderInStatus builds an order aggregate advanced to the given status through
// the domain lifecycle methods. Orders at Ready or beyond carry an assignment.
func orderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	now := time.Now()

	item, err := order.NewItem(kernel.NewUUID(), 10)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		"EVT-20260830-000042",
		kernel.NewUUID(),
		"Riverside Wedding",
		now.Add(72*time.Hour),
		testPhone(t),
		[]*order.Item{item},
		now,
	)
	require.NoError(t, err)

	if status == order.Pending {
		return aggregate
	}
	require.NoError(t, aggregate.Approve(now))
	if status == order.Approved {
		return aggregate
	}
	require.NoError(t, aggregate.StartPreparing())
	if status == order.Preparing {
		return aggregate
	}
	require.NoError(t, aggregate.MarkReady())
	require.NoError(t, aggregate.AssignDelivery(kernel.NewUUID(), kernel.NewUUID()))
	if status == order.Ready {
		return aggregate
	}
	require.NoError(t, aggregate.Dispatch(now))
	if status == order.Dispatched {
		return aggregate
	}
	require.NoError(t, aggregate.Deliver(now, "Jordan Reyes"))
	require.Equal(t, order.Delivered, aggregate.Status())
	return aggregate
}

// issuedCredential mints a fresh unclaimed credential for the test phone.
func issuedCredential(t *testing.T, purpose credential.Purpose, code string) *credential.Credential {
	t.Helper()
	c, err := credential.NewCredential(kernel.NewUUID(), testPhone(t), purpose, code, time.Now())
	require.NoError(t, err)
	return c
}

package commands_test

import (
	"testing"

	"eventsupply/internal/core/application/usecases/commands"
	"eventsupply/internal/core/domain/model/evidence"
	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/core/domain/model/order"
	"eventsupply/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvancePreparationCommandHandler_StartPreparing(t *testing.T) {
	ctx := t.Context()
	approved := orderInStatus(t, order.Approved)
	cmd, err := commands.NewAdvancePreparationCommand(approved.ID(), order.Preparing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, approved.ID()).Return(approved, nil).Once()
	orderRepo.On("UpdateStatusFrom", mock.Anything, approved, order.Approved).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvancePreparationCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Preparing, approved.Status())
}

func TestNewAdvancePreparationCommand_RejectsForeignTargets(t *testing.T) {
	for _, target := range []order.Status{order.Pending, order.Approved, order.Dispatched, order.Cancelled} {
		_, err := commands.NewAdvancePreparationCommand(kernel.NewUUID(), target)
		require.Error(t, err, target.String())
	}
}

func TestAssignDeliveryCommandHandler_Success(t *testing.T) {
	ctx := t.Context()
	approved := orderInStatus(t, order.Approved)
	staffRef := kernel.NewUUID()
	vehicleRef := kernel.NewUUID()
	cmd, err := commands.NewAssignDeliveryCommand(approved.ID(), staffRef, vehicleRef)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, approved.ID()).Return(approved, nil).Once()
	orderRepo.On("Update", mock.Anything, approved).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Approved, approved.Status())
	require.True(t, approved.AssignedStaffRef().IsEqual(staffRef))
	require.True(t, approved.AssignedVehicleRef().IsEqual(vehicleRef))
}

func TestAssignDeliveryCommandHandler_RejectsAfterDispatch(t *testing.T) {
	ctx := t.Context()
	dispatched := orderInStatus(t, order.Dispatched)
	cmd, err := commands.NewAssignDeliveryCommand(dispatched.ID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, dispatched.ID()).Return(dispatched, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDeliveryCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_PreDispatch(t *testing.T) {
	ctx := t.Context()
	for _, status := range []order.Status{order.Pending, order.Approved, order.Preparing, order.Ready} {
		aggregate := orderInStatus(t, status)
		cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Twice()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
		orderRepo.On("UpdateStatusFrom", mock.Anything, aggregate, status).Return(nil).Once()

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCancelOrderCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd), status.String())
		require.Equal(t, order.Cancelled, aggregate.Status())
	}
}

func TestCancelOrderCommandHandler_RejectsAfterDispatch(t *testing.T) {
	ctx := t.Context()
	dispatched := orderInStatus(t, order.Dispatched)
	cmd, err := commands.NewCancelOrderCommand(dispatched.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, dispatched.ID()).Return(dispatched, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	require.Equal(t, order.Dispatched, dispatched.Status())
}

func TestReturnOrderCommandHandler_PartialReturnWithNotes(t *testing.T) {
	ctx := t.Context()
	delivered := orderInStatus(t, order.Delivered)
	productRef := delivered.Items()[0].ProductRef()
	cmd, err := commands.NewReturnOrderCommand(
		delivered.ID(),
		map[kernel.UUID]int{productRef: 7},
		"two chairs cracked",
		"one table missing",
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, delivered.ID()).Return(delivered, nil).Once()
	orderRepo.On("UpdateStatusFrom", mock.Anything, delivered, order.Delivered).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReturnOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Returned, delivered.Status())
	require.Equal(t, 7, delivered.Items()[0].QuantityReturned())
	require.Equal(t, "two chairs cracked", delivered.DamagedNotes())
	require.Equal(t, "one table missing", delivered.MissingNotes())
	require.NotNil(t, delivered.ReturnedAt())
}

func TestAttachPhotoCommandHandler_Success(t *testing.T) {
	ctx := t.Context()
	dispatched := orderInStatus(t, order.Dispatched)
	cmd, err := commands.NewAttachPhotoCommand(
		dispatched.ID(), evidence.PhotoPhaseDelivery, "blob://evidence/7f3a.jpg", kernel.NewUUID(),
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	evidenceRepo := new(MockEvidenceRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("EvidenceRepository").Return(evidenceRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, dispatched.ID()).Return(dispatched, nil).Once()
	evidenceRepo.On("AddPhoto", mock.Anything, mock.MatchedBy(func(p *evidence.Photo) bool {
		return p.Phase() == evidence.PhotoPhaseDelivery && p.BlobRef() == "blob://evidence/7f3a.jpg"
	})).Return(nil).Once()

	factory := new(MockEvidenceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachPhotoCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	evidenceRepo.AssertExpectations(t)
}

func TestAttachPhotoCommandHandler_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAttachPhotoCommand(
		orderID, evidence.PhotoPhaseLoading, "blob://evidence/a1.jpg", kernel.NewUUID(),
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderID", orderID.String())).Once()

	factory := new(MockEvidenceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachPhotoCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "EvidenceRepository")
}

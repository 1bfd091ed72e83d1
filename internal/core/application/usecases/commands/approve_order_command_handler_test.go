package commands_test

import (
	"testing"
	"time"

	"eventsupply/internal/core/application/usecases/commands"
	"eventsupply/internal/core/domain/model/credential"
	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApproveOrderCommandHandler_StaffApproval_Success(t *testing.T) {
	ctx := t.Context()
	pending := orderInStatus(t, order.Pending)
	cmd, err := commands.NewApproveOrderCommand(pending.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateStatusFrom", mock.Anything, pending, order.Pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockGatedTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockNotificationGateway)
	gateway.On("Send", mock.Anything, pending.SupervisorPhone(), mock.AnythingOfType("string")).Return(nil).Once()

	h := commands.NewApproveOrderCommandHandler(factory, gateway, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Approved, pending.Status())
	orderRepo.AssertExpectations(t)
	gateway.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApproveOrderCommandHandler_SelfApproval_ClaimsCredential(t *testing.T) {
	ctx := t.Context()
	pending := orderInStatus(t, order.Pending)
	issued := issuedCredential(t, credential.PurposeOrderApproval, "204863")
	cmd, err := commands.NewSelfApproveOrderCommand(pending.ID(), kernel.NewUUID(), "Sam Okafor", "204863")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	credRepo := new(MockCredentialRepository)
	evidenceRepo := new(MockEvidenceRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CredentialRepository").Return(credRepo).Once()
	uow.On("EvidenceRepository").Return(evidenceRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	credRepo.On("GetLatest", mock.Anything, pending.SupervisorPhone(), credential.PurposeOrderApproval).
		Return(issued, nil).Once()
	credRepo.On("Claim", mock.Anything, issued.ID(), mock.AnythingOfType("time.Time")).Return(nil).Once()
	evidenceRepo.On("AddConfirmation", mock.Anything, mock.AnythingOfType("*evidence.ConfirmationRecord")).
		Return(nil).Once()
	orderRepo.On("UpdateStatusFrom", mock.Anything, pending, order.Pending).Return(nil).Once()

	factory := new(MockGatedTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockNotificationGateway)
	gateway.On("Send", mock.Anything, pending.SupervisorPhone(), mock.AnythingOfType("string")).Return(nil).Once()

	h := commands.NewApproveOrderCommandHandler(factory, gateway, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Approved, pending.Status())
	credRepo.AssertExpectations(t)
	evidenceRepo.AssertExpectations(t)
}

func TestApproveOrderCommandHandler_SelfApproval_WrongCode(t *testing.T) {
	ctx := t.Context()
	pending := orderInStatus(t, order.Pending)
	issued := issuedCredential(t, credential.PurposeOrderApproval, "204863")
	cmd, err := commands.NewSelfApproveOrderCommand(pending.ID(), kernel.NewUUID(), "Sam Okafor", "999999")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	credRepo := new(MockCredentialRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CredentialRepository").Return(credRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	credRepo.On("GetLatest", mock.Anything, pending.SupervisorPhone(), credential.PurposeOrderApproval).
		Return(issued, nil).Once()

	factory := new(MockGatedTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory, new(MockNotificationGateway), discardLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, credential.ErrCredentialRejected)
	require.Equal(t, order.Pending, pending.Status())
	credRepo.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestApproveOrderCommandHandler_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	approved := orderInStatus(t, order.Approved)
	cmd, err := commands.NewApproveOrderCommand(approved.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, approved.ID()).Return(approved, nil).Once()

	factory := new(MockGatedTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory, new(MockNotificationGateway), discardLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestApproveOrderCommandHandler_StaleStatus(t *testing.T) {
	ctx := t.Context()
	pending := orderInStatus(t, order.Pending)
	cmd, err := commands.NewApproveOrderCommand(pending.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	orderRepo.On("UpdateStatusFrom", mock.Anything, pending, order.Pending).
		Return(order.ErrStaleStatus).Once()

	factory := new(MockGatedTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory, new(MockNotificationGateway), discardLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrStaleStatus)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestApproveOrderCommandHandler_ExpiredCode(t *testing.T) {
	ctx := t.Context()
	pending := orderInStatus(t, order.Pending)
	expired, err := credential.NewCredential(
		kernel.NewUUID(), pending.SupervisorPhone(), credential.PurposeOrderApproval,
		"204863", time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)
	cmd, err := commands.NewSelfApproveOrderCommand(pending.ID(), kernel.NewUUID(), "Sam Okafor", "204863")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	credRepo := new(MockCredentialRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CredentialRepository").Return(credRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	credRepo.On("GetLatest", mock.Anything, pending.SupervisorPhone(), credential.PurposeOrderApproval).
		Return(expired, nil).Once()

	factory := new(MockGatedTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory, new(MockNotificationGateway), discardLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, credential.ErrCredentialRejected)
	require.Equal(t, order.Pending, pending.Status())
}

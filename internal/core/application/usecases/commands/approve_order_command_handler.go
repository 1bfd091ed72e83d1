package commands

import (
	"context"
	"log/slog"
	"time"

	"eventsupply/internal/core/domain/model/credential"
	"eventsupply/internal/core/domain/model/evidence"
	"eventsupply/internal/core/domain/model/order"
	"eventsupply/internal/core/ports"
	"eventsupply/internal/pkg/metrics"
)

// ApproveOrderCommandHandler commits the pending -> approved transition.
// For gated self-approvals, claiming the credential, writing the confirmation
// record, and the status change happen in one transaction.
type ApproveOrderCommandHandler struct {
	uowFactory GatedTransitionUoWFactory
	gateway    ports.NotificationGateway
	logger     *slog.Logger
}

// NewApproveOrderCommandHandler creates a handler for order approvals.
func NewApproveOrderCommandHandler(
	uowFactory GatedTransitionUoWFactory,
	gateway ports.NotificationGateway,
	logger *slog.Logger,
) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger.With("component", "approve_order_handler"),
	}
}

// Handle processes the approval command.
func (h ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := aggregate.Status()

	if cmd.IsGated() {
		credentialID, claimErr := claimLatestCredential(
			ctx,
			uow.CredentialRepository(),
			aggregate.SupervisorPhone(),
			credential.PurposeOrderApproval,
			cmd.Code(),
			now,
		)
		if claimErr != nil {
			metrics.CredentialsRejectedTotal.WithLabelValues(credential.PurposeOrderApproval.String()).Inc()
			return claimErr
		}

		record, recordErr := evidence.NewConfirmationRecord(
			aggregate.ID(),
			evidence.ConfirmationPhaseApproval,
			cmd.ApprovedBy(),
			cmd.ApproverName(),
			credentialID,
			now,
		)
		if recordErr != nil {
			return recordErr
		}

		if err = uow.EvidenceRepository().AddConfirmation(ctx, record); err != nil {
			return err
		}
	}

	if err = aggregate.Approve(now); err != nil {
		metrics.TransitionsRejectedTotal.WithLabelValues(order.Approved.String()).Inc()
		return err
	}

	if err = uow.OrderRepository().UpdateStatusFrom(ctx, aggregate, from); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Count the claim only once the transaction holding it landed.
	if cmd.IsGated() {
		metrics.CredentialsClaimedTotal.WithLabelValues(credential.PurposeOrderApproval.String()).Inc()
	}
	metrics.TransitionsTotal.WithLabelValues(order.Approved.String()).Inc()
	sendBestEffort(ctx, h.gateway, h.logger, aggregate.SupervisorPhone(), statusMessage(aggregate))
	return nil
}

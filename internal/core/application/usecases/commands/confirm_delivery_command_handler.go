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

// ConfirmDeliveryCommandHandler commits the dispatched -> delivered transition.
// The credential claim, the confirmation record, and the status change form
// one transaction: a rejected code leaves the order dispatched.
type ConfirmDeliveryCommandHandler struct {
	uowFactory GatedTransitionUoWFactory
	gateway    ports.NotificationGateway
	logger     *slog.Logger
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(
	uowFactory GatedTransitionUoWFactory,
	gateway ports.NotificationGateway,
	logger *slog.Logger,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger.With("component", "confirm_delivery_handler"),
	}
}

// Handle processes the delivery confirmation command.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	credentialID, err := claimLatestCredential(
		ctx,
		uow.CredentialRepository(),
		aggregate.SupervisorPhone(),
		credential.PurposeDeliveryConfirmation,
		cmd.Code(),
		now,
	)
	if err != nil {
		metrics.CredentialsRejectedTotal.WithLabelValues(credential.PurposeDeliveryConfirmation.String()).Inc()
		return err
	}

	if err = aggregate.Deliver(now, cmd.RecipientName()); err != nil {
		metrics.TransitionsRejectedTotal.WithLabelValues(order.Delivered.String()).Inc()
		return err
	}

	record, err := evidence.NewConfirmationRecord(
		aggregate.ID(),
		evidence.ConfirmationPhaseDelivery,
		cmd.ConfirmedBy(),
		cmd.RecipientName(),
		credentialID,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.EvidenceRepository().AddConfirmation(ctx, record); err != nil {
		return err
	}

	if err = uow.OrderRepository().UpdateStatusFrom(ctx, aggregate, from); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Count the claim only once the transaction holding it landed.
	metrics.CredentialsClaimedTotal.WithLabelValues(credential.PurposeDeliveryConfirmation.String()).Inc()
	metrics.TransitionsTotal.WithLabelValues(order.Delivered.String()).Inc()
	sendBestEffort(ctx, h.gateway, h.logger, aggregate.SupervisorPhone(), statusMessage(aggregate))
	return nil
}

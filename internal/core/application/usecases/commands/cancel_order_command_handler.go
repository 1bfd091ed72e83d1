package commands

import (
	"context"

	"eventsupply/internal/core/domain/model/order"
	"eventsupply/internal/pkg/metrics"
)

// CancelOrderCommandHandler commits a pre-dispatch cancellation.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

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

	if err = aggregate.Cancel(); err != nil {
		metrics.TransitionsRejectedTotal.WithLabelValues(order.Cancelled.String()).Inc()
		return err
	}

	if err = uow.OrderRepository().UpdateStatusFrom(ctx, aggregate, from); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.TransitionsTotal.WithLabelValues(order.Cancelled.String()).Inc()
	return nil
}

package commands

import (
	"context"
	"time"

	"eventsupply/internal/core/domain/model/order"
	"eventsupply/internal/pkg/metrics"
)

// ReturnOrderCommandHandler commits the delivered -> returned transition.
// Returned goods do not flow back into availability automatically; restock
// is a separate intake decision after inspection.
type ReturnOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReturnOrderCommandHandler creates a handler for post-event returns.
func NewReturnOrderCommandHandler(uowFactory OrderUoWFactory) ReturnOrderCommandHandler {
	return ReturnOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return command.
func (h ReturnOrderCommandHandler) Handle(ctx context.Context, cmd ReturnOrderCommand) error {
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

	if err = aggregate.Return(now, cmd.ReturnedQuantities(), cmd.DamagedNotes(), cmd.MissingNotes()); err != nil {
		metrics.TransitionsRejectedTotal.WithLabelValues(order.Returned.String()).Inc()
		return err
	}

	if err = uow.OrderRepository().UpdateStatusFrom(ctx, aggregate, from); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.TransitionsTotal.WithLabelValues(order.Returned.String()).Inc()
	return nil
}

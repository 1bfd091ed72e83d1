package commands

import (
	"context"

	"eventsupply/internal/core/domain/model/order"
	"eventsupply/internal/pkg/metrics"
)

// AdvancePreparationCommandHandler handles warehouse stage progression.
type AdvancePreparationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvancePreparationCommandHandler creates a handler for preparation stages.
func NewAdvancePreparationCommandHandler(uowFactory OrderUoWFactory) AdvancePreparationCommandHandler {
	return AdvancePreparationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stage progression command.
func (h AdvancePreparationCommandHandler) Handle(ctx context.Context, cmd AdvancePreparationCommand) error {
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

	switch cmd.Target() {
	case order.Preparing:
		err = aggregate.StartPreparing()
	case order.Ready:
		err = aggregate.MarkReady()
	}
	if err != nil {
		metrics.TransitionsRejectedTotal.WithLabelValues(cmd.Target().String()).Inc()
		return err
	}

	if err = uow.OrderRepository().UpdateStatusFrom(ctx, aggregate, from); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.TransitionsTotal.WithLabelValues(cmd.Target().String()).Inc()
	return nil
}

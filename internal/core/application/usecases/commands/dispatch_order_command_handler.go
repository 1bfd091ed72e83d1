package commands

import (
	"context"
	"log/slog"
	"time"

	"eventsupply/internal/core/domain/model/inventory"
	"eventsupply/internal/core/domain/model/order"
	"eventsupply/internal/core/ports"
	"eventsupply/internal/pkg/metrics"
)

// DispatchOrderCommandHandler commits the ready -> dispatched transition
// together with the all-or-nothing inventory deduction. If any line is short,
// nothing is deducted and the order keeps its status.
type DispatchOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	gateway    ports.NotificationGateway
	logger     *slog.Logger
}

// NewDispatchOrderCommandHandler creates a handler for order dispatch.
func NewDispatchOrderCommandHandler(
	uowFactory DispatchUoWFactory,
	gateway ports.NotificationGateway,
	logger *slog.Logger,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger.With("component", "dispatch_order_handler"),
	}
}

// Handle processes the dispatch command.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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

	if err = aggregate.Dispatch(now); err != nil {
		metrics.TransitionsRejectedTotal.WithLabelValues(order.Dispatched.String()).Inc()
		return err
	}

	demands := make([]inventory.Demand, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		demand, demandErr := inventory.NewDemand(item.ProductRef(), item.QuantityRequested())
		if demandErr != nil {
			return demandErr
		}
		demands = append(demands, demand)
	}

	// The status CAS goes before the deduction so concurrent dispatches
	// serialize on the order row: the loser fails with ErrStaleStatus instead
	// of misreading the winner's deduction as a stock shortfall.
	if err = uow.OrderRepository().UpdateStatusFrom(ctx, aggregate, from); err != nil {
		return err
	}

	if err = uow.InventoryLedger().Deduct(ctx, demands); err != nil {
		metrics.TransitionsRejectedTotal.WithLabelValues(order.Dispatched.String()).Inc()
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.TransitionsTotal.WithLabelValues(order.Dispatched.String()).Inc()
	sendBestEffort(ctx, h.gateway, h.logger, aggregate.SupervisorPhone(), statusMessage(aggregate))
	return nil
}

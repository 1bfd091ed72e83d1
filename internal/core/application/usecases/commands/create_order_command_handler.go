package commands

import (
	"context"
	"time"

	"eventsupply/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles supply order creation.
// Generates the human-readable order number and persists the aggregate in
// Pending status within a transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the assigned order number.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	now := time.Now()

	orderNumber, err := order.NewOrderNumber(now)
	if err != nil {
		return "", err
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, itemErr := order.NewItem(input.ProductRef, input.Quantity)
		if itemErr != nil {
			return "", itemErr
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		orderNumber,
		cmd.CustomerRef(),
		cmd.EventName(),
		cmd.EventDate(),
		cmd.SupervisorPhone(),
		items,
		now,
	)
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return orderNumber, nil
}

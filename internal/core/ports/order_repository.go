// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the outbound
// notification gateway.
package ports

import (
	"context"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order without touching its status.
	// Status changes must go through UpdateStatusFrom.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateStatusFrom persists the aggregate's full state conditioned on the
	// stored status still being from (compare-and-swap on the status column).
	// Returns order.ErrStaleStatus when the condition fails, so concurrent
	// callers racing on the same transition get exactly one winner.
	UpdateStatusFrom(ctx context.Context, aggregate *order.Order, from order.Status) error

	// Get retrieves an order aggregate with its items by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its human-readable unique order number.
	GetByNumber(ctx context.Context, orderNumber string) (*order.Order, error)

	// GetAllActive retrieves all orders not in a terminal state.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}

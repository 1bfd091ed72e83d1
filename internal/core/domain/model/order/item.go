package order

import (
	"fmt"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/errs"
)

// Item is a line of an order: a product reference with the requested quantity
// and the quantities actually dispatched and returned.
//
// Invariants: quantityDispatched <= quantityRequested and
// quantityReturned <= quantityDispatched. Items are owned exclusively by their
// Order and are only mutated through aggregate methods.
type Item struct {
	productRef         kernel.UUID
	quantityRequested  int
	quantityDispatched int
	quantityReturned   int
}

// NewItem creates a validated order line with nothing dispatched or returned yet.
func NewItem(productRef kernel.UUID, quantityRequested int) (*Item, error) {
	if err := productRef.Validate(); err != nil {
		return nil, err
	}

	if quantityRequested <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantityRequested",
			fmt.Errorf("%d is not greater than 0", quantityRequested),
		)
	}

	return &Item{
		productRef:        productRef,
		quantityRequested: quantityRequested,
	}, nil
}

// RestoreItem reconstructs an order line from persistence.
func RestoreItem(productRef kernel.UUID, requested, dispatched, returned int) (*Item, error) {
	item, err := NewItem(productRef, requested)
	if err != nil {
		return nil, err
	}

	if dispatched < 0 || dispatched > requested {
		return nil, errs.NewValueIsOutOfRangeError("quantityDispatched", dispatched, 0, requested)
	}
	if returned < 0 || returned > dispatched {
		return nil, errs.NewValueIsOutOfRangeError("quantityReturned", returned, 0, dispatched)
	}

	item.quantityDispatched = dispatched
	item.quantityReturned = returned
	return item, nil
}

// ProductRef returns the referenced product's identifier.
func (i *Item) ProductRef() kernel.UUID {
	return i.productRef
}

// QuantityRequested returns the quantity the customer asked for.
func (i *Item) QuantityRequested() int {
	return i.quantityRequested
}

// QuantityDispatched returns the quantity that left the warehouse.
func (i *Item) QuantityDispatched() int {
	return i.quantityDispatched
}

// QuantityReturned returns the quantity that came back after delivery.
func (i *Item) QuantityReturned() int {
	return i.quantityReturned
}

// markDispatched records that the full requested quantity left the warehouse.
// Called by Order.Dispatch once the ledger deduction is committed to succeed.
func (i *Item) markDispatched() {
	i.quantityDispatched = i.quantityRequested
}

// markReturned records how many units came back. Bounded by what was dispatched.
func (i *Item) markReturned(quantity int) error {
	if quantity < 0 || quantity > i.quantityDispatched {
		return errs.NewValueIsOutOfRangeError("quantityReturned", quantity, 0, i.quantityDispatched)
	}
	i.quantityReturned = quantity
	return nil
}

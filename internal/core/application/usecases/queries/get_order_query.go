// Package queries contains read-side operations of the CQRS split. Query
// handlers bypass the domain model and read projection rows straight from the
// database.
package queries

import (
	"errors"
	"time"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its line items by identifier.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s\n", detail.OrderNumber, detail.Status)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's detail view.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderItemResponse is one product line of the detail view.
type GetOrderItemResponse struct {
	ProductRef         kernel.UUID
	QuantityRequested  int
	QuantityDispatched int
	QuantityReturned   int
}

// GetOrderQueryResponse is the detail view of one order. Credential codes
// never appear in any read model.
type GetOrderQueryResponse struct {
	ID                 kernel.UUID
	OrderNumber        string
	CustomerRef        kernel.UUID
	EventName          string
	EventDate          time.Time
	SupervisorPhone    string
	Status             string
	AssignedStaffRef   *kernel.UUID
	AssignedVehicleRef *kernel.UUID
	RecipientName      string
	DamagedNotes       string
	MissingNotes       string
	CreatedAt          time.Time
	ApprovedAt         *time.Time
	DispatchedAt       *time.Time
	DeliveredAt        *time.Time
	ReturnedAt         *time.Time
	Items              []GetOrderItemResponse
}

package queries

import (
	"errors"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/guard"
)

var (
	ErrGetInventoryQueryIsNotConstructed = errors.New(
		"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
	)
)

// GetInventoryQuery retrieves current availability for every tracked product.
type GetInventoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInventoryQuery creates a query for the full availability list.
func NewGetInventoryQuery() GetInventoryQuery {
	return GetInventoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryQueryIsNotConstructed)
}

// GetInventoryQueryResponse is one availability line.
type GetInventoryQueryResponse struct {
	ProductRef kernel.UUID
	Available  int
}

package inventory

import (
	"errors"
	"fmt"
	"strings"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/errs"
)

// ErrInsufficientStock is the sentinel for a dispatch blocked by stock levels.
// The concrete *ShortfallError carries the per-product deficits.
var ErrInsufficientStock = errors.New("insufficient stock")

// Shortfall is the per-product deficit between requested and available
// quantity, reported when a dispatch precondition fails.
type Shortfall struct {
	ProductRef kernel.UUID
	Requested  int
	Available  int
}

// Deficit returns how many units are missing for this product.
func (s Shortfall) Deficit() int {
	return s.Requested - s.Available
}

// ShortfallError reports every product that blocked an all-or-nothing
// deduction. A shortfall on any line aborts the whole dispatch.
type ShortfallError struct {
	Shortfalls []Shortfall
}

func (e *ShortfallError) Error() string {
	parts := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		parts = append(parts, fmt.Sprintf("%s short by %d", s.ProductRef, s.Deficit()))
	}
	return "insufficient stock: " + strings.Join(parts, ", ")
}

func (e *ShortfallError) Unwrap() error {
	return ErrInsufficientStock
}

// Demand is a requested quantity of one product, the unit the ledger checks,
// deducts, and restores in.
type Demand struct {
	ProductRef kernel.UUID
	Quantity   int
}

// NewDemand creates a validated demand line.
func NewDemand(productRef kernel.UUID, quantity int) (Demand, error) {
	if err := productRef.Validate(); err != nil {
		return Demand{}, err
	}
	if quantity <= 0 {
		return Demand{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return Demand{ProductRef: productRef, Quantity: quantity}, nil
}

// Line tracks the available quantity of one product. Lines are mutated only
// through the inventory ledger, never directly by the order lifecycle.
type Line struct {
	productRef kernel.UUID
	available  int

	isConstructed bool
}

// ErrLineIsNotConstructed is returned when a Line was not created via NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine")

// NewLine creates an inventory line with a non-negative available quantity.
func NewLine(productRef kernel.UUID, available int) (*Line, error) {
	if err := productRef.Validate(); err != nil {
		return nil, err
	}
	if available < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"available",
			fmt.Errorf("%d is negative", available),
		)
	}

	return &Line{
		productRef:    productRef,
		available:     available,
		isConstructed: true,
	}, nil
}

// Validate ensures the Line was constructed via NewLine.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ProductRef returns the product this line tracks.
func (l *Line) ProductRef() kernel.UUID {
	return l.productRef
}

// Available returns the quantity currently on hand.
func (l *Line) Available() int {
	return l.available
}

// ShortfallFor returns the shortfall a demand would cause against this line,
// or ok=false if the line can satisfy it.
func (l *Line) ShortfallFor(demand Demand) (Shortfall, bool) {
	if demand.Quantity <= l.available {
		return Shortfall{}, false
	}
	return Shortfall{
		ProductRef: l.productRef,
		Requested:  demand.Quantity,
		Available:  l.available,
	}, true
}

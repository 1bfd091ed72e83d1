package ports

import (
	"context"

	"eventsupply/internal/core/domain/model/inventory"
	"eventsupply/internal/core/domain/model/kernel"
)

// InventoryLedger defines the contract for tracked stock. Availability is
// mutated only through the ledger, never by writing lines directly.
type InventoryLedger interface {
	// CheckAvailability reports every demand the current stock cannot satisfy.
	// Read-only; an empty result means all lines are satisfiable right now.
	CheckAvailability(ctx context.Context, demands []inventory.Demand) ([]inventory.Shortfall, error)

	// Deduct decrements availability for every demand as one atomic unit.
	// Each row update carries its own "available >= quantity" condition; a
	// shortfall on any line returns *inventory.ShortfallError and must leave
	// no line deducted (the surrounding unit of work rolls back).
	Deduct(ctx context.Context, demands []inventory.Demand) error

	// Restore increments availability for every demand. Used only by explicit
	// compensating flows; the standard lifecycle never calls it since
	// cancellation before dispatch never deducted.
	Restore(ctx context.Context, demands []inventory.Demand) error

	// GetLine retrieves the availability line for one product.
	GetLine(ctx context.Context, productRef kernel.UUID) (*inventory.Line, error)

	// UpsertLine creates or replaces the availability line for one product.
	// Used by stock intake, not by the order lifecycle.
	UpsertLine(ctx context.Context, line *inventory.Line) error
}

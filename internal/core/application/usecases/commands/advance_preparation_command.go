package commands

import (
	"errors"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/core/domain/model/order"
	"eventsupply/internal/pkg/errs"
	"eventsupply/internal/pkg/guard"
)

var (
	ErrAdvancePreparationCommandIsNotConstructed = errors.New(
		"AdvancePreparationCommand must be created via NewAdvancePreparationCommand constructor",
	)
)

// AdvancePreparationCommand moves an order one step through the warehouse
// stages: Approved -> Preparing or Preparing -> Ready.
type AdvancePreparationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewAdvancePreparationCommand creates a command targeting one of the
// preparation stages. Only Preparing and Ready are accepted as targets.
func NewAdvancePreparationCommand(orderID kernel.UUID, target order.Status) (AdvancePreparationCommand, error) {
	cmd := AdvancePreparationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AdvancePreparationCommand{}, err
	}

	if target != order.Preparing && target != order.Ready {
		return AdvancePreparationCommand{}, errs.NewValueIsInvalidError("target")
	}
	cmd.target = target

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvancePreparationCommand) Validate() error {
	return c.guard.Validate(ErrAdvancePreparationCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AdvancePreparationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the preparation stage to move to.
func (c AdvancePreparationCommand) Target() order.Status {
	return c.target
}

func (c *AdvancePreparationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

package commands

import (
	"errors"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/guard"
)

var (
	ErrReturnOrderCommandIsNotConstructed = errors.New(
		"ReturnOrderCommand must be created via NewReturnOrderCommand constructor",
	)
)

// ReturnOrderCommand records the post-event pickup of delivered goods,
// including per-product returned counts and damage or loss notes.
type ReturnOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	returnedQuantities map[kernel.UUID]int
	damagedNotes       string
	missingNotes       string

	guard guard.ConstructorGuard
}

// NewReturnOrderCommand creates a validated return command. Quantities may be
// partial or empty: items not listed count as fully missing, and the notes
// carry the explanation.
func NewReturnOrderCommand(
	orderID kernel.UUID,
	returnedQuantities map[kernel.UUID]int,
	damagedNotes, missingNotes string,
) (ReturnOrderCommand, error) {
	cmd := ReturnOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ReturnOrderCommand{}, err
	}

	cmd.returnedQuantities = returnedQuantities
	cmd.damagedNotes = damagedNotes
	cmd.missingNotes = missingNotes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnOrderCommand) Validate() error {
	return c.guard.Validate(ErrReturnOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ReturnOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ReturnedQuantities returns the per-product returned counts.
func (c ReturnOrderCommand) ReturnedQuantities() map[kernel.UUID]int {
	return c.returnedQuantities
}

// DamagedNotes returns the damage description, empty when nothing was damaged.
func (c ReturnOrderCommand) DamagedNotes() string {
	return c.damagedNotes
}

// MissingNotes returns the loss description, empty when nothing went missing.
func (c ReturnOrderCommand) MissingNotes() string {
	return c.missingNotes
}

func (c *ReturnOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

package commands

import (
	"errors"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/guard"
)

var (
	ErrAssignDeliveryCommandIsNotConstructed = errors.New(
		"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
	)
)

// AssignDeliveryCommand attaches delivery staff and a vehicle to an order.
// Assignment does not change status; it satisfies the dispatch precondition.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	staffRef   kernel.UUID
	vehicleRef kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a validated assignment command.
func NewAssignDeliveryCommand(orderID, staffRef, vehicleRef kernel.UUID) (AssignDeliveryCommand, error) {
	cmd := AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStaffRef(staffRef),
		cmd.setVehicleRef(vehicleRef),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StaffRef returns the assigned delivery staff identifier.
func (c AssignDeliveryCommand) StaffRef() kernel.UUID {
	return c.staffRef
}

// VehicleRef returns the assigned vehicle identifier.
func (c AssignDeliveryCommand) VehicleRef() kernel.UUID {
	return c.vehicleRef
}

func (c *AssignDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryCommand) setStaffRef(staffRef kernel.UUID) error {
	if err := staffRef.Validate(); err != nil {
		return err
	}
	c.staffRef = staffRef
	return nil
}

func (c *AssignDeliveryCommand) setVehicleRef(vehicleRef kernel.UUID) error {
	if err := vehicleRef.Validate(); err != nil {
		return err
	}
	c.vehicleRef = vehicleRef
	return nil
}

package commands

import (
	"errors"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/errs"
	"eventsupply/internal/pkg/guard"
)

var (
	ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
		"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
	)
)

// ConfirmDeliveryCommand completes a dispatched order. Delivery is always
// gated: the staff member on site collects the recipient's name and the code
// texted to the supervisor phone, and the transition commits only after the
// credential is claimed.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	confirmedBy   kernel.UUID
	recipientName string
	code          string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a validated delivery confirmation command.
func NewConfirmDeliveryCommand(
	orderID, confirmedBy kernel.UUID,
	recipientName, code string,
) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setConfirmedBy(confirmedBy),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	if recipientName == "" {
		return ConfirmDeliveryCommand{}, errs.NewValueIsRequiredError("recipientName")
	}
	if code == "" {
		return ConfirmDeliveryCommand{}, errs.NewValueIsRequiredError("code")
	}
	cmd.recipientName = recipientName
	cmd.code = code

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ConfirmedBy returns the on-site staff member's identifier.
func (c ConfirmDeliveryCommand) ConfirmedBy() kernel.UUID {
	return c.confirmedBy
}

// RecipientName returns the name of the person who received the goods.
func (c ConfirmDeliveryCommand) RecipientName() string {
	return c.recipientName
}

// Code returns the delivery confirmation code.
func (c ConfirmDeliveryCommand) Code() string {
	return c.code
}

func (c *ConfirmDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmDeliveryCommand) setConfirmedBy(confirmedBy kernel.UUID) error {
	if err := confirmedBy.Validate(); err != nil {
		return err
	}
	c.confirmedBy = confirmedBy
	return nil
}

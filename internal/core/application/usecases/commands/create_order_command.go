package commands

import (
	"errors"
	"time"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/errs"
	"eventsupply/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ItemInput is one requested product line of a new order.
type ItemInput struct {
	ProductRef kernel.UUID
	Quantity   int
}

// CreateOrderCommand represents a request to register a new supply order for
// an event. The order starts in Pending status awaiting approval.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerRef     kernel.UUID
	eventName       string
	eventDate       time.Time
	supervisorPhone kernel.Phone
	items           []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated command to register a supply order.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerRef kernel.UUID,
	eventName string,
	eventDate time.Time,
	supervisorPhone kernel.Phone,
	items []ItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerRef(customerRef),
		cmd.setEventName(eventName),
		cmd.setEventDate(eventDate),
		cmd.setSupervisorPhone(supervisorPhone),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerRef returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerRef() kernel.UUID {
	return c.customerRef
}

// EventName returns the supplied event's name.
func (c CreateOrderCommand) EventName() string {
	return c.eventName
}

// EventDate returns the supplied event's date.
func (c CreateOrderCommand) EventDate() time.Time {
	return c.eventDate
}

// SupervisorPhone returns the phone receiving credentials and status texts.
func (c CreateOrderCommand) SupervisorPhone() kernel.Phone {
	return c.supervisorPhone
}

// Items returns the requested product lines.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerRef(customerRef kernel.UUID) error {
	if err := customerRef.Validate(); err != nil {
		return err
	}
	c.customerRef = customerRef
	return nil
}

func (c *CreateOrderCommand) setEventName(eventName string) error {
	if eventName == "" {
		return errs.NewValueIsRequiredError("eventName")
	}
	c.eventName = eventName
	return nil
}

func (c *CreateOrderCommand) setEventDate(eventDate time.Time) error {
	if eventDate.IsZero() {
		return errs.NewValueIsRequiredError("eventDate")
	}
	c.eventDate = eventDate
	return nil
}

func (c *CreateOrderCommand) setSupervisorPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.supervisorPhone = phone
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = items
	return nil
}

package order

import (
	"errors"
	"fmt"
	"time"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrPreconditionUnmet is the sentinel for a transition whose "from" state is
	// correct but whose precondition set is not satisfied (missing assignment,
	// missing recipient name). Insufficient stock is reported separately through
	// inventory.ShortfallError.
	ErrPreconditionUnmet = errors.New("transition precondition unmet")
)

// PreconditionError reports which precondition blocked a transition.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("transition precondition unmet: %s", e.Reason)
}

func (e *PreconditionError) Unwrap() error {
	return ErrPreconditionUnmet
}

// Order is the aggregate root for the supply order lifecycle. It owns its line
// items exclusively and is the only object through which status transitions,
// delivery assignment, and return bookkeeping happen.
//
// Invariants:
//   - Status changes follow the transition table in Status
//   - Dispatch requires both staff and vehicle assignment
//   - Delivery requires a recipient name (the credential claim is enforced by
//     the application layer, which commits the transition only after a
//     successful claim)
//   - Status timestamps are set exactly once, by the transition that enters
//     the corresponding state
type Order struct {
	id              kernel.UUID
	orderNumber     string
	customerRef     kernel.UUID
	eventName       string
	eventDate       time.Time
	supervisorPhone kernel.Phone
	status          Status

	assignedStaffRef   *kernel.UUID
	assignedVehicleRef *kernel.UUID
	recipientName      string

	damagedNotes string
	missingNotes string

	createdAt    time.Time
	approvedAt   *time.Time
	dispatchedAt *time.Time
	deliveredAt  *time.Time
	returnedAt   *time.Time

	items []*Item

	isConstructed bool
}

// NewOrder creates a Pending order with validated header fields and at least
// one line item. The order number must be unique across the system; the core
// relies on that uniqueness for idempotent lookups but leaves the format to
// the caller.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerRef kernel.UUID,
	eventName string,
	eventDate time.Time,
	supervisorPhone kernel.Phone,
	items []*Item,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerRef(customerRef),
		o.setEventName(eventName),
		o.setEventDate(eventDate),
		o.setSupervisorPhone(supervisorPhone),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the full persisted state of an order for
// reconstruction by repositories.
type RestoreOrderParams struct {
	ID                 kernel.UUID
	OrderNumber        string
	CustomerRef        kernel.UUID
	EventName          string
	EventDate          time.Time
	SupervisorPhone    kernel.Phone
	Status             Status
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
	Items              []*Item
}

// RestoreOrder reconstructs an order aggregate from persistence.
// The persisted status must be a valid lifecycle state.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o, err := NewOrder(
		params.ID,
		params.OrderNumber,
		params.CustomerRef,
		params.EventName,
		params.EventDate,
		params.SupervisorPhone,
		params.Items,
		params.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = params.Status.Validate(); err != nil {
		return nil, err
	}

	o.status = params.Status
	o.assignedStaffRef = params.AssignedStaffRef
	o.assignedVehicleRef = params.AssignedVehicleRef
	o.recipientName = params.RecipientName
	o.damagedNotes = params.DamagedNotes
	o.missingNotes = params.MissingNotes
	o.approvedAt = params.ApprovedAt
	o.dispatchedAt = params.DispatchedAt
	o.deliveredAt = params.DeliveredAt
	o.returnedAt = params.ReturnedAt

	return o, nil
}

// Validate ensures the Order instance was constructed through NewOrder or
// RestoreOrder, preventing use of bare struct literals.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable unique order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerRef returns the identifier of the ordering customer.
func (o *Order) CustomerRef() kernel.UUID {
	return o.customerRef
}

// EventName returns the name of the event the order supplies.
func (o *Order) EventName() string {
	return o.eventName
}

// EventDate returns the date of the event.
func (o *Order) EventDate() time.Time {
	return o.eventDate
}

// SupervisorPhone returns the phone that receives credentials and status texts.
func (o *Order) SupervisorPhone() kernel.Phone {
	return o.supervisorPhone
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// AssignedStaffRef returns the assigned delivery staff ID, nil if unassigned.
func (o *Order) AssignedStaffRef() *kernel.UUID {
	return o.assignedStaffRef
}

// AssignedVehicleRef returns the assigned vehicle ID, nil if unassigned.
func (o *Order) AssignedVehicleRef() *kernel.UUID {
	return o.assignedVehicleRef
}

// RecipientName returns the name captured at delivery confirmation.
func (o *Order) RecipientName() string {
	return o.recipientName
}

// DamagedNotes returns the damaged-items notes captured on return.
func (o *Order) DamagedNotes() string {
	return o.damagedNotes
}

// MissingNotes returns the missing-items notes captured on return.
func (o *Order) MissingNotes() string {
	return o.missingNotes
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ApprovedAt returns when the order entered Approved, nil if it never did.
func (o *Order) ApprovedAt() *time.Time {
	return o.approvedAt
}

// DispatchedAt returns when the order entered Dispatched, nil if it never did.
func (o *Order) DispatchedAt() *time.Time {
	return o.dispatchedAt
}

// DeliveredAt returns when the order entered Delivered, nil if it never did.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// ReturnedAt returns when the order entered Returned, nil if it never did.
func (o *Order) ReturnedAt() *time.Time {
	return o.returnedAt
}

// Items returns the order's line items. The slice must not be mutated by callers.
func (o *Order) Items() []*Item {
	return o.items
}

// Approve moves the order from Pending to Approved and stamps the time.
// Whether the approval was staff-performed or credential-gated self-approval
// is the application layer's concern; the aggregate only enforces the state.
func (o *Order) Approve(now time.Time) error {
	newStatus, err := o.status.TransitionTo(Approved)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.approvedAt = &now
	return nil
}

// StartPreparing moves the order from Approved to Preparing.
func (o *Order) StartPreparing() error {
	newStatus, err := o.status.TransitionTo(Preparing)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReady moves the order from Preparing to Ready.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.TransitionTo(Ready)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignDelivery sets the staff member and vehicle that will run the delivery.
// Assignment is allowed while the order is Approved, Preparing, or Ready;
// reassignment before dispatch overwrites the previous pair.
func (o *Order) AssignDelivery(staffRef, vehicleRef kernel.UUID) error {
	if err := errors.Join(staffRef.Validate(), vehicleRef.Validate()); err != nil {
		return err
	}

	switch o.status {
	case Approved, Preparing, Ready:
	default:
		return &InvalidTransitionError{From: o.status, To: o.status}
	}

	o.assignedStaffRef = &staffRef
	o.assignedVehicleRef = &vehicleRef
	return nil
}

// Dispatch moves the order from Ready to Dispatched, requiring both staff and
// vehicle assignment. On success every line item's dispatched quantity is set
// to its requested quantity. The caller must have verified and deducted stock
// in the same transactional boundary.
func (o *Order) Dispatch(now time.Time) error {
	if !o.status.CanTransitionTo(Dispatched) {
		return &InvalidTransitionError{From: o.status, To: Dispatched}
	}

	if o.assignedStaffRef == nil {
		return &PreconditionError{Reason: "no delivery staff assigned"}
	}
	if o.assignedVehicleRef == nil {
		return &PreconditionError{Reason: "no vehicle assigned"}
	}

	o.status = Dispatched
	o.dispatchedAt = &now
	for _, item := range o.items {
		item.markDispatched()
	}
	return nil
}

// Deliver moves the order from Dispatched to Delivered and captures the
// recipient name. The application layer commits this transition only after a
// delivery-confirmation credential was atomically claimed.
func (o *Order) Deliver(now time.Time, recipientName string) error {
	if !o.status.CanTransitionTo(Delivered) {
		return &InvalidTransitionError{From: o.status, To: Delivered}
	}

	if recipientName == "" {
		return &PreconditionError{Reason: "recipient name is required"}
	}

	o.status = Delivered
	o.deliveredAt = &now
	o.recipientName = recipientName
	return nil
}

// Return moves the order from Delivered to Returned, recording per-product
// returned quantities and free-form damaged/missing notes. Quantities for
// products not in the map default to zero; quantities may not exceed what was
// dispatched. No inventory change happens here: restocking is an explicit
// compensating flow.
func (o *Order) Return(now time.Time, returnedQuantities map[kernel.UUID]int, damagedNotes, missingNotes string) error {
	if !o.status.CanTransitionTo(Returned) {
		return &InvalidTransitionError{From: o.status, To: Returned}
	}

	for _, item := range o.items {
		quantity, ok := returnedQuantities[item.ProductRef()]
		if !ok {
			continue
		}
		if err := item.markReturned(quantity); err != nil {
			return err
		}
	}

	o.status = Returned
	o.returnedAt = &now
	o.damagedNotes = damagedNotes
	o.missingNotes = missingNotes
	return nil
}

// Cancel abandons the order. Allowed from Pending, Approved, Preparing, and
// Ready; stock is never deducted before Dispatched, so there is nothing to
// restore.
func (o *Order) Cancel() error {
	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomerRef(customerRef kernel.UUID) error {
	if err := customerRef.Validate(); err != nil {
		return err
	}
	o.customerRef = customerRef
	return nil
}

func (o *Order) setEventName(eventName string) error {
	if eventName == "" {
		return errs.NewValueIsRequiredError("eventName")
	}
	o.eventName = eventName
	return nil
}

func (o *Order) setEventDate(eventDate time.Time) error {
	if eventDate.IsZero() {
		return errs.NewValueIsRequiredError("eventDate")
	}
	o.eventDate = eventDate
	return nil
}

func (o *Order) setSupervisorPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	o.supervisorPhone = phone
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if item == nil {
			return errs.NewValueIsRequiredError("item")
		}
		if _, ok := seen[item.ProductRef()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("duplicate product %s", item.ProductRef()),
			)
		}
		seen[item.ProductRef()] = struct{}{}
	}

	o.items = items
	return nil
}

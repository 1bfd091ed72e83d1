package commands

import (
	"errors"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/errs"
	"eventsupply/internal/pkg/guard"
)

var (
	ErrApproveOrderCommandIsNotConstructed = errors.New(
		"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
	)
)

// ApproveOrderCommand moves a pending order to Approved.
//
// Two flavors exist: staff approval carries no code and needs no credential;
// customer self-approval carries the code texted to the supervisor phone and
// commits only after the credential is claimed, leaving a confirmation record.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	approvedBy   kernel.UUID
	approverName string
	code         string

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates a staff approval command (no credential gate).
func NewApproveOrderCommand(orderID, approvedBy kernel.UUID) (ApproveOrderCommand, error) {
	cmd := ApproveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setApprovedBy(approvedBy),
	); err != nil {
		return ApproveOrderCommand{}, err
	}

	return cmd, nil
}

// NewSelfApproveOrderCommand creates a customer self-approval command gated by
// the order-approval credential.
func NewSelfApproveOrderCommand(
	orderID, approvedBy kernel.UUID,
	approverName, code string,
) (ApproveOrderCommand, error) {
	cmd, err := NewApproveOrderCommand(orderID, approvedBy)
	if err != nil {
		return ApproveOrderCommand{}, err
	}

	if approverName == "" {
		return ApproveOrderCommand{}, errs.NewValueIsRequiredError("approverName")
	}
	if code == "" {
		return ApproveOrderCommand{}, errs.NewValueIsRequiredError("code")
	}

	cmd.approverName = approverName
	cmd.code = code
	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ApproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ApprovedBy returns the approving actor's identifier.
func (c ApproveOrderCommand) ApprovedBy() kernel.UUID {
	return c.approvedBy
}

// ApproverName returns the approver's display name for the confirmation record.
// Empty for staff approvals.
func (c ApproveOrderCommand) ApproverName() string {
	return c.approverName
}

// Code returns the credential code, empty for staff approvals.
func (c ApproveOrderCommand) Code() string {
	return c.code
}

// IsGated reports whether this approval must claim a credential.
func (c ApproveOrderCommand) IsGated() bool {
	return c.code != ""
}

func (c *ApproveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ApproveOrderCommand) setApprovedBy(approvedBy kernel.UUID) error {
	if err := approvedBy.Validate(); err != nil {
		return err
	}
	c.approvedBy = approvedBy
	return nil
}

package commands

import (
	"errors"

	"eventsupply/internal/core/domain/model/credential"
	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/guard"
)

var (
	ErrIssueCredentialCommandIsNotConstructed = errors.New(
		"IssueCredentialCommand must be created via NewIssueCredentialCommand constructor",
	)
)

// IssueCredentialCommand mints a fresh single-use code for a (phone, purpose)
// pair and texts it out. Issuing supersedes any prior code for the same pair:
// verification only ever targets the latest.
type IssueCredentialCommand struct { //nolint:recvcheck //using for validation
	phone   kernel.Phone
	purpose credential.Purpose

	guard guard.ConstructorGuard
}

// NewIssueCredentialCommand creates a validated issuance command.
func NewIssueCredentialCommand(phone kernel.Phone, purpose credential.Purpose) (IssueCredentialCommand, error) {
	cmd := IssueCredentialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPhone(phone),
		cmd.setPurpose(purpose),
	); err != nil {
		return IssueCredentialCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c IssueCredentialCommand) Validate() error {
	return c.guard.Validate(ErrIssueCredentialCommandIsNotConstructed)
}

// Phone returns the phone the code is issued to.
func (c IssueCredentialCommand) Phone() kernel.Phone {
	return c.phone
}

// Purpose returns the action the code will authorize.
func (c IssueCredentialCommand) Purpose() credential.Purpose {
	return c.purpose
}

func (c *IssueCredentialCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *IssueCredentialCommand) setPurpose(purpose credential.Purpose) error {
	if err := purpose.Validate(); err != nil {
		return err
	}
	c.purpose = purpose
	return nil
}

package commands

import (
	"errors"

	"eventsupply/internal/core/domain/model/credential"
	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/guard"
)

var (
	ErrResendCredentialCommandIsNotConstructed = errors.New(
		"ResendCredentialCommand must be created via NewResendCredentialCommand constructor",
	)

	// ErrResendCooldown signals that a code was issued for this pair too
	// recently to issue another.
	ErrResendCooldown = errors.New("a code was sent recently, wait before requesting another")
)

// ResendCredentialCommand requests a fresh code for a pair that already had
// one, subject to a cooldown since the last issuance.
type ResendCredentialCommand struct { //nolint:recvcheck //using for validation
	phone   kernel.Phone
	purpose credential.Purpose

	guard guard.ConstructorGuard
}

// NewResendCredentialCommand creates a validated resend command.
func NewResendCredentialCommand(phone kernel.Phone, purpose credential.Purpose) (ResendCredentialCommand, error) {
	cmd := ResendCredentialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPhone(phone),
		cmd.setPurpose(purpose),
	); err != nil {
		return ResendCredentialCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResendCredentialCommand) Validate() error {
	return c.guard.Validate(ErrResendCredentialCommandIsNotConstructed)
}

// Phone returns the phone the code is reissued to.
func (c ResendCredentialCommand) Phone() kernel.Phone {
	return c.phone
}

// Purpose returns the action the code will authorize.
func (c ResendCredentialCommand) Purpose() credential.Purpose {
	return c.purpose
}

func (c *ResendCredentialCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *ResendCredentialCommand) setPurpose(purpose credential.Purpose) error {
	if err := purpose.Validate(); err != nil {
		return err
	}
	c.purpose = purpose
	return nil
}

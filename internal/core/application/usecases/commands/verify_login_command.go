package commands

import (
	"errors"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/errs"
	"eventsupply/internal/pkg/guard"
)

var (
	ErrVerifyLoginCommandIsNotConstructed = errors.New(
		"VerifyLoginCommand must be created via NewVerifyLoginCommand constructor",
	)
)

// VerifyLoginCommand exchanges a texted login code for a session token.
type VerifyLoginCommand struct { //nolint:recvcheck //using for validation
	phone kernel.Phone
	code  string

	guard guard.ConstructorGuard
}

// NewVerifyLoginCommand creates a validated login verification command.
func NewVerifyLoginCommand(phone kernel.Phone, code string) (VerifyLoginCommand, error) {
	cmd := VerifyLoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPhone(phone); err != nil {
		return VerifyLoginCommand{}, err
	}

	if code == "" {
		return VerifyLoginCommand{}, errs.NewValueIsRequiredError("code")
	}
	cmd.code = code

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyLoginCommand) Validate() error {
	return c.guard.Validate(ErrVerifyLoginCommandIsNotConstructed)
}

// Phone returns the phone attempting to sign in.
func (c VerifyLoginCommand) Phone() kernel.Phone {
	return c.phone
}

// Code returns the submitted login code.
func (c VerifyLoginCommand) Code() string {
	return c.code
}

func (c *VerifyLoginCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

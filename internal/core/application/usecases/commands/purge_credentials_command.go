package commands

import (
	"errors"
	"time"

	"eventsupply/internal/pkg/errs"
	"eventsupply/internal/pkg/guard"
)

var (
	ErrPurgeCredentialsCommandIsNotConstructed = errors.New(
		"PurgeCredentialsCommand must be created via NewPurgeCredentialsCommand constructor",
	)
)

// PurgeCredentialsCommand removes credentials that expired before a cutoff.
// Hygiene only: expiry is enforced at claim time regardless of the purge.
type PurgeCredentialsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewPurgeCredentialsCommand creates a validated purge command.
func NewPurgeCredentialsCommand(cutoff time.Time) (PurgeCredentialsCommand, error) {
	cmd := PurgeCredentialsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if cutoff.IsZero() {
		return PurgeCredentialsCommand{}, errs.NewValueIsRequiredError("cutoff")
	}
	cmd.cutoff = cutoff

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeCredentialsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeCredentialsCommandIsNotConstructed)
}

// Cutoff returns the expiry cutoff; anything expired before it is removed.
func (c PurgeCredentialsCommand) Cutoff() time.Time {
	return c.cutoff
}

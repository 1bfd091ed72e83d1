package commands

import (
	"context"
)

// PurgeCredentialsCommandHandler deletes long-expired credentials.
type PurgeCredentialsCommandHandler struct {
	uowFactory CredentialUoWFactory
}

// NewPurgeCredentialsCommandHandler creates a handler for the expiry sweep.
func NewPurgeCredentialsCommandHandler(uowFactory CredentialUoWFactory) PurgeCredentialsCommandHandler {
	return PurgeCredentialsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and returns the number of rows removed.
func (h PurgeCredentialsCommandHandler) Handle(ctx context.Context, cmd PurgeCredentialsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.CredentialRepository().DeleteExpiredBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}

package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"eventsupply/internal/core/ports"
	"eventsupply/internal/pkg/errs"
	"eventsupply/internal/pkg/metrics"
)

// resendCooldown is the minimum gap between two issuances for the same
// (phone, purpose) pair.
const resendCooldown = 60 * time.Second

// ResendCredentialCommandHandler reissues a code after the cooldown elapsed.
// The fresh code supersedes the previous one immediately.
type ResendCredentialCommandHandler struct {
	uowFactory CredentialUoWFactory
	gateway    ports.NotificationGateway
	logger     *slog.Logger
}

// NewResendCredentialCommandHandler creates a handler for credential resend.
func NewResendCredentialCommandHandler(
	uowFactory CredentialUoWFactory,
	gateway ports.NotificationGateway,
	logger *slog.Logger,
) ResendCredentialCommandHandler {
	return ResendCredentialCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger.With("component", "resend_credential_handler"),
	}
}

// Handle processes the resend command.
func (h ResendCredentialCommandHandler) Handle(ctx context.Context, cmd ResendCredentialCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	latest, err := uow.CredentialRepository().GetLatest(ctx, cmd.Phone(), cmd.Purpose())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// Nothing issued yet: a resend degrades to a plain issue.
	case err != nil:
		return err
	case now.Sub(latest.IssuedAt()) < resendCooldown:
		return ErrResendCooldown
	}

	issued, err := issueCredential(ctx, uow.CredentialRepository(), cmd.Phone(), cmd.Purpose(), now)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.CredentialsIssuedTotal.WithLabelValues(cmd.Purpose().String()).Inc()
	sendBestEffort(ctx, h.gateway, h.logger, cmd.Phone(), credentialMessage(issued))
	return nil
}

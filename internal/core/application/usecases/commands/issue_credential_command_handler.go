package commands

import (
	"context"
	"log/slog"
	"time"

	"eventsupply/internal/core/domain/model/credential"
	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/core/ports"
	"eventsupply/internal/pkg/metrics"
)

// IssueCredentialCommandHandler mints, persists, and texts a fresh code.
// The code leaves the system only over the notification channel; handlers and
// responses never expose it.
type IssueCredentialCommandHandler struct {
	uowFactory CredentialUoWFactory
	gateway    ports.NotificationGateway
	logger     *slog.Logger
}

// NewIssueCredentialCommandHandler creates a handler for credential issuance.
func NewIssueCredentialCommandHandler(
	uowFactory CredentialUoWFactory,
	gateway ports.NotificationGateway,
	logger *slog.Logger,
) IssueCredentialCommandHandler {
	return IssueCredentialCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger.With("component", "issue_credential_handler"),
	}
}

// Handle processes the issuance command.
func (h IssueCredentialCommandHandler) Handle(ctx context.Context, cmd IssueCredentialCommand) error {
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

// issueCredential mints and persists a fresh credential inside the caller's
// transaction. Shared by plain issuance and resend.
func issueCredential(
	ctx context.Context,
	repo ports.CredentialRepository,
	phone kernel.Phone,
	purpose credential.Purpose,
	now time.Time,
) (*credential.Credential, error) {
	code, err := credential.GenerateCode()
	if err != nil {
		return nil, err
	}

	issued, err := credential.NewCredential(kernel.NewUUID(), phone, purpose, code, now)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, issued); err != nil {
		return nil, err
	}

	return issued, nil
}

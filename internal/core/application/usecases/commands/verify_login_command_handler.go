package commands

import (
	"context"
	"time"

	"eventsupply/internal/core/domain/model/credential"
	"eventsupply/internal/pkg/auth"
	"eventsupply/internal/pkg/metrics"
)

// VerifyLoginCommandHandler claims the latest login credential and issues a
// signed session token on success. A rejected code yields the same error
// whether it was wrong, expired, claimed, or never issued.
type VerifyLoginCommandHandler struct {
	uowFactory CredentialUoWFactory
	signer     *auth.TokenSigner
}

// NewVerifyLoginCommandHandler creates a handler for login verification.
func NewVerifyLoginCommandHandler(uowFactory CredentialUoWFactory, signer *auth.TokenSigner) VerifyLoginCommandHandler {
	return VerifyLoginCommandHandler{
		uowFactory: uowFactory,
		signer:     signer,
	}
}

// Handle processes the verification command and returns the session token.
func (h VerifyLoginCommandHandler) Handle(ctx context.Context, cmd VerifyLoginCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := claimLatestCredential(
		ctx,
		uow.CredentialRepository(),
		cmd.Phone(),
		credential.PurposeLogin,
		cmd.Code(),
		now,
	)
	if err != nil {
		metrics.CredentialsRejectedTotal.WithLabelValues(credential.PurposeLogin.String()).Inc()
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	metrics.CredentialsClaimedTotal.WithLabelValues(credential.PurposeLogin.String()).Inc()

	return h.signer.Sign(cmd.Phone().String(), now)
}

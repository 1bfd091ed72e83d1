package commands

import (
	"context"
	"errors"
	"time"

	"eventsupply/internal/core/domain/model/credential"
	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/core/ports"
	"eventsupply/internal/pkg/errs"
)

// claimLatestCredential verifies and atomically claims the latest credential
// for (phone, purpose). Every failure path collapses into
// credential.ErrCredentialRejected: never issued, wrong code, expired, and
// already claimed are indistinguishable to the caller.
//
// The local Matches check screens out obvious mismatches; the repository Claim
// re-checks "unclaimed and unexpired" as a conditional update so that two
// concurrent verifications with the same correct code get exactly one winner.
func claimLatestCredential(
	ctx context.Context,
	repo ports.CredentialRepository,
	phone kernel.Phone,
	purpose credential.Purpose,
	code string,
	now time.Time,
) (kernel.UUID, error) {
	latest, err := repo.GetLatest(ctx, phone, purpose)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, credential.ErrCredentialRejected
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	if !latest.Matches(code, now) {
		return kernel.UUID{}, credential.ErrCredentialRejected
	}

	if err := repo.Claim(ctx, latest.ID(), now); err != nil {
		return kernel.UUID{}, err
	}

	return latest.ID(), nil
}

package ports

import (
	"context"
	"time"

	"eventsupply/internal/core/domain/model/credential"
	"eventsupply/internal/core/domain/model/kernel"
)

// CredentialRepository defines the persistence contract for credentials.
type CredentialRepository interface {
	// Add persists a newly issued credential. Prior unclaimed credentials for
	// the same (phone, purpose) are left in place; they are superseded because
	// verification only ever targets the latest.
	Add(ctx context.Context, aggregate *credential.Credential) error

	// GetLatest retrieves the most recently issued credential for the
	// (phone, purpose) pair, claimed or not, expired or not. Returns an
	// errs.ObjectNotFoundError when none was ever issued.
	GetLatest(ctx context.Context, phone kernel.Phone, purpose credential.Purpose) (*credential.Credential, error)

	// Claim atomically flips the credential to claimed, conditioned on it
	// still being unclaimed and unexpired at now ("claim if still claimable").
	// Exactly one of two concurrent claims succeeds; the loser gets
	// credential.ErrCredentialRejected.
	Claim(ctx context.Context, id kernel.UUID, now time.Time) error

	// DeleteExpiredBefore removes credentials whose expiry is older than the
	// cutoff. Hygiene only: expiry enforcement lives in the claim predicate.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

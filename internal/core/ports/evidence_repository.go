package ports

import (
	"context"

	"eventsupply/internal/core/domain/model/evidence"
	"eventsupply/internal/core/domain/model/kernel"
)

// EvidenceRepository defines the persistence contract for audit artifacts.
type EvidenceRepository interface {
	// AddPhoto appends a photo reference. Always succeeds for an existing
	// order; there is no upper bound on photos per phase.
	AddPhoto(ctx context.Context, photo *evidence.Photo) error

	// AddConfirmation inserts the confirmation record for a gated transition.
	// Returns evidence.ErrConfirmationAlreadyRecorded if a record for the same
	// (order, phase) already exists: a phase is confirmed at most once.
	AddConfirmation(ctx context.Context, record *evidence.ConfirmationRecord) error

	// GetConfirmation retrieves the confirmation record for an order phase.
	// Returns an errs.ObjectNotFoundError when the phase was never confirmed.
	GetConfirmation(ctx context.Context, orderID kernel.UUID, phase evidence.ConfirmationPhase) (*evidence.ConfirmationRecord, error)

	// GetPhotos retrieves all photo references attached to an order.
	GetPhotos(ctx context.Context, orderID kernel.UUID) ([]*evidence.Photo, error)
}

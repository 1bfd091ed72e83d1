package evidence

import (
	"errors"
	"fmt"
	"time"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/errs"
)

var (
	// ErrConfirmationAlreadyRecorded is returned when a second confirmation is
	// attempted for the same (order, phase). A phase is confirmed at most once.
	ErrConfirmationAlreadyRecorded = errors.New("confirmation already recorded for this phase")

	// ErrConfirmationIsNotConstructed is returned for zero-value ConfirmationRecords.
	ErrConfirmationIsNotConstructed = errors.New("ConfirmationRecord must be created via NewConfirmationRecord")

	// ErrPhotoIsNotConstructed is returned for zero-value Photos.
	ErrPhotoIsNotConstructed = errors.New("Photo must be created via NewPhoto")
)

// ConfirmationPhase identifies which gated transition a confirmation proves.
type ConfirmationPhase int

const (
	ConfirmationPhaseUnknown ConfirmationPhase = iota

	// ConfirmationPhaseApproval proves a customer self-approval.
	ConfirmationPhaseApproval

	// ConfirmationPhaseDelivery proves a delivery confirmation.
	ConfirmationPhaseDelivery
)

// Validate checks that the phase is one of the defined gated phases.
func (p ConfirmationPhase) Validate() error {
	switch p {
	case ConfirmationPhaseApproval, ConfirmationPhaseDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("phase", fmt.Errorf("%d is not a valid confirmation phase", p))
	}
}

// String returns the human-readable phase name.
func (p ConfirmationPhase) String() string {
	switch p {
	case ConfirmationPhaseApproval:
		return "Approval"
	case ConfirmationPhaseDelivery:
		return "Delivery"
	default:
		return "Unknown"
	}
}

// PhotoPhase identifies the lifecycle moment an evidence photo documents.
type PhotoPhase int

const (
	PhotoPhaseUnknown PhotoPhase = iota

	// PhotoPhaseLoading documents goods being loaded for dispatch.
	PhotoPhaseLoading

	// PhotoPhaseDelivery documents goods handed over at the event.
	PhotoPhaseDelivery

	// PhotoPhaseReturn documents the state of returned goods.
	PhotoPhaseReturn
)

// Validate checks that the photo phase is one of the defined phases.
func (p PhotoPhase) Validate() error {
	switch p {
	case PhotoPhaseLoading, PhotoPhaseDelivery, PhotoPhaseReturn:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("phase", fmt.Errorf("%d is not a valid photo phase", p))
	}
}

// String returns the human-readable photo phase name.
func (p PhotoPhase) String() string {
	switch p {
	case PhotoPhaseLoading:
		return "Loading"
	case PhotoPhaseDelivery:
		return "Delivery"
	case PhotoPhaseReturn:
		return "Return"
	default:
		return "Unknown"
	}
}

// ConfirmationRecord is the audit artifact proving that a specific gated
// transition was authorized by a specific claimed credential. Created exactly
// once per gated transition and immutable afterward.
type ConfirmationRecord struct {
	orderID       kernel.UUID
	phase         ConfirmationPhase
	confirmedBy   kernel.UUID
	recipientName string
	credentialID  kernel.UUID
	recordedAt    time.Time

	isConstructed bool
}

// NewConfirmationRecord creates the audit record for a claimed credential.
func NewConfirmationRecord(
	orderID kernel.UUID,
	phase ConfirmationPhase,
	confirmedBy kernel.UUID,
	recipientName string,
	credentialID kernel.UUID,
	recordedAt time.Time,
) (*ConfirmationRecord, error) {
	if err := errors.Join(
		orderID.Validate(),
		phase.Validate(),
		confirmedBy.Validate(),
		credentialID.Validate(),
	); err != nil {
		return nil, err
	}

	if recipientName == "" {
		return nil, errs.NewValueIsRequiredError("recipientName")
	}

	return &ConfirmationRecord{
		orderID:       orderID,
		phase:         phase,
		confirmedBy:   confirmedBy,
		recipientName: recipientName,
		credentialID:  credentialID,
		recordedAt:    recordedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the record was created via NewConfirmationRecord.
func (r *ConfirmationRecord) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrConfirmationIsNotConstructed
	}
	return nil
}

// OrderID returns the confirmed order's identifier.
func (r *ConfirmationRecord) OrderID() kernel.UUID {
	return r.orderID
}

// Phase returns the gated phase this record proves.
func (r *ConfirmationRecord) Phase() ConfirmationPhase {
	return r.phase
}

// ConfirmedBy returns the actor who performed the confirmation.
func (r *ConfirmationRecord) ConfirmedBy() kernel.UUID {
	return r.confirmedBy
}

// RecipientName returns the name captured with the confirmation.
func (r *ConfirmationRecord) RecipientName() string {
	return r.recipientName
}

// CredentialID references the claimed credential; the credential itself stays
// owned by the credential store and is never embedded.
func (r *ConfirmationRecord) CredentialID() kernel.UUID {
	return r.credentialID
}

// RecordedAt returns when the confirmation was recorded.
func (r *ConfirmationRecord) RecordedAt() time.Time {
	return r.recordedAt
}

// Photo is an append-only reference to an evidence photo blob. The core stores
// only the opaque blob reference; storage mechanics live elsewhere.
type Photo struct {
	orderID    kernel.UUID
	phase      PhotoPhase
	blobRef    string
	uploadedBy kernel.UUID
	uploadedAt time.Time

	isConstructed bool
}

// NewPhoto creates a photo reference for an order phase.
func NewPhoto(
	orderID kernel.UUID,
	phase PhotoPhase,
	blobRef string,
	uploadedBy kernel.UUID,
	uploadedAt time.Time,
) (*Photo, error) {
	if err := errors.Join(
		orderID.Validate(),
		phase.Validate(),
		uploadedBy.Validate(),
	); err != nil {
		return nil, err
	}

	if blobRef == "" {
		return nil, errs.NewValueIsRequiredError("blobRef")
	}

	return &Photo{
		orderID:       orderID,
		phase:         phase,
		blobRef:       blobRef,
		uploadedBy:    uploadedBy,
		uploadedAt:    uploadedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the photo was created via NewPhoto.
func (p *Photo) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPhotoIsNotConstructed
	}
	return nil
}

// OrderID returns the identifier of the photographed order.
func (p *Photo) OrderID() kernel.UUID {
	return p.orderID
}

// Phase returns the lifecycle moment the photo documents.
func (p *Photo) Phase() PhotoPhase {
	return p.phase
}

// BlobRef returns the opaque reference to the stored image.
func (p *Photo) BlobRef() string {
	return p.blobRef
}

// UploadedBy returns the actor who attached the photo.
func (p *Photo) UploadedBy() kernel.UUID {
	return p.uploadedBy
}

// UploadedAt returns when the photo was attached.
func (p *Photo) UploadedAt() time.Time {
	return p.uploadedAt
}

package commands

import (
	"errors"

	"eventsupply/internal/core/domain/model/evidence"
	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/errs"
	"eventsupply/internal/pkg/guard"
)

var (
	ErrAttachPhotoCommandIsNotConstructed = errors.New(
		"AttachPhotoCommand must be created via NewAttachPhotoCommand constructor",
	)
)

// AttachPhotoCommand appends a photo reference to an order's evidence trail.
type AttachPhotoCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	phase      evidence.PhotoPhase
	blobRef    string
	uploadedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewAttachPhotoCommand creates a validated photo attachment command.
func NewAttachPhotoCommand(
	orderID kernel.UUID,
	phase evidence.PhotoPhase,
	blobRef string,
	uploadedBy kernel.UUID,
) (AttachPhotoCommand, error) {
	cmd := AttachPhotoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUploadedBy(uploadedBy),
		phase.Validate(),
	); err != nil {
		return AttachPhotoCommand{}, err
	}

	if blobRef == "" {
		return AttachPhotoCommand{}, errs.NewValueIsRequiredError("blobRef")
	}

	cmd.phase = phase
	cmd.blobRef = blobRef

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachPhotoCommand) Validate() error {
	return c.guard.Validate(ErrAttachPhotoCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AttachPhotoCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Phase returns the lifecycle phase the photo documents.
func (c AttachPhotoCommand) Phase() evidence.PhotoPhase {
	return c.phase
}

// BlobRef returns the opaque reference to the stored photo.
func (c AttachPhotoCommand) BlobRef() string {
	return c.blobRef
}

// UploadedBy returns the uploading actor's identifier.
func (c AttachPhotoCommand) UploadedBy() kernel.UUID {
	return c.uploadedBy
}

func (c *AttachPhotoCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AttachPhotoCommand) setUploadedBy(uploadedBy kernel.UUID) error {
	if err := uploadedBy.Validate(); err != nil {
		return err
	}
	c.uploadedBy = uploadedBy
	return nil
}

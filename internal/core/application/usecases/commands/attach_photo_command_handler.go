package commands

import (
	"context"
	"time"

	"eventsupply/internal/core/domain/model/evidence"
)

// AttachPhotoCommandHandler appends a photo reference after checking the
// order exists. Photos are append-only and unbounded per phase.
type AttachPhotoCommandHandler struct {
	uowFactory EvidenceUoWFactory
}

// NewAttachPhotoCommandHandler creates a handler for photo attachment.
func NewAttachPhotoCommandHandler(uowFactory EvidenceUoWFactory) AttachPhotoCommandHandler {
	return AttachPhotoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the photo attachment command.
func (h AttachPhotoCommandHandler) Handle(ctx context.Context, cmd AttachPhotoCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	photo, err := evidence.NewPhoto(aggregate.ID(), cmd.Phase(), cmd.BlobRef(), cmd.UploadedBy(), now)
	if err != nil {
		return err
	}

	if err = uow.EvidenceRepository().AddPhoto(ctx, photo); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

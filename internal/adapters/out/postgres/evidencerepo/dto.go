// Package evidencerepo persists confirmation records and photo references.
// Confirmations are unique per (order, phase); photos are append-only.
package evidencerepo

import (
	"time"

	"eventsupply/internal/core/domain/model/evidence"
	"eventsupply/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ConfirmationDTO represents the database structure for confirmation records.
// The composite primary key enforces at most one confirmation per phase.
type ConfirmationDTO struct {
	OrderID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Phase         int       `gorm:"primaryKey"`
	ConfirmedBy   uuid.UUID `gorm:"type:uuid"`
	RecipientName string
	CredentialID  uuid.UUID `gorm:"type:uuid"`
	RecordedAt    time.Time
}

// TableName specifies the database table name for confirmation records.
func (ConfirmationDTO) TableName() string {
	return "confirmation_records"
}

// PhotoDTO represents the database structure for evidence photo references.
type PhotoDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Phase      int
	BlobRef    string
	UploadedBy uuid.UUID `gorm:"type:uuid"`
	UploadedAt time.Time
}

// TableName specifies the database table name for photo references.
func (PhotoDTO) TableName() string {
	return "evidence_photos"
}

func confirmationFromDomain(record *evidence.ConfirmationRecord) ConfirmationDTO {
	return ConfirmationDTO{
		OrderID:       record.OrderID().Bytes(),
		Phase:         int(record.Phase()),
		ConfirmedBy:   record.ConfirmedBy().Bytes(),
		RecipientName: record.RecipientName(),
		CredentialID:  record.CredentialID().Bytes(),
		RecordedAt:    record.RecordedAt(),
	}
}

func confirmationToDomain(dto ConfirmationDTO) (*evidence.ConfirmationRecord, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	confirmedBy, err := kernel.UUIDFromBytes(dto.ConfirmedBy[:])
	if err != nil {
		return nil, err
	}

	credentialID, err := kernel.UUIDFromBytes(dto.CredentialID[:])
	if err != nil {
		return nil, err
	}

	return evidence.NewConfirmationRecord(
		orderID,
		evidence.ConfirmationPhase(dto.Phase),
		confirmedBy,
		dto.RecipientName,
		credentialID,
		dto.RecordedAt,
	)
}

func photoFromDomain(photo *evidence.Photo) PhotoDTO {
	return PhotoDTO{
		ID:         uuid.New(),
		OrderID:    photo.OrderID().Bytes(),
		Phase:      int(photo.Phase()),
		BlobRef:    photo.BlobRef(),
		UploadedBy: photo.UploadedBy().Bytes(),
		UploadedAt: photo.UploadedAt(),
	}
}

func photoToDomain(dto PhotoDTO) (*evidence.Photo, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	uploadedBy, err := kernel.UUIDFromBytes(dto.UploadedBy[:])
	if err != nil {
		return nil, err
	}

	return evidence.NewPhoto(
		orderID,
		evidence.PhotoPhase(dto.Phase),
		dto.BlobRef,
		uploadedBy,
		dto.UploadedAt,
	)
}

package evidencerepo

import (
	"context"
	"errors"

	"eventsupply/internal/core/domain/model/evidence"
	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEvidenceRepository implements EvidenceRepository using GORM.
type GormEvidenceRepository struct {
	db *gorm.DB
}

// NewGormEvidenceRepository creates a new GORM evidence repository.
func NewGormEvidenceRepository(db *gorm.DB) *GormEvidenceRepository {
	return &GormEvidenceRepository{db: db}
}

// AddPhoto appends a photo reference.
func (r *GormEvidenceRepository) AddPhoto(ctx context.Context, photo *evidence.Photo) error {
	if err := photo.Validate(); err != nil {
		return err
	}

	dto := photoFromDomain(photo)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddConfirmation inserts the confirmation record for a gated transition.
// The insert does nothing on a primary key conflict, so a second confirmation
// of the same phase shows up as zero affected rows.
func (r *GormEvidenceRepository) AddConfirmation(ctx context.Context, record *evidence.ConfirmationRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := confirmationFromDomain(record)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return evidence.ErrConfirmationAlreadyRecorded
	}

	return nil
}

// GetConfirmation retrieves the confirmation record for an order phase.
func (r *GormEvidenceRepository) GetConfirmation(
	ctx context.Context,
	orderID kernel.UUID,
	phase evidence.ConfirmationPhase,
) (*evidence.ConfirmationRecord, error) {
	if err := errors.Join(orderID.Validate(), phase.Validate()); err != nil {
		return nil, err
	}

	var dto ConfirmationDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND phase = ?", orderID.Bytes(), int(phase)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("confirmation", orderID.String())
	}
	if err != nil {
		return nil, err
	}

	return confirmationToDomain(dto)
}

// GetPhotos retrieves all photo references attached to an order, oldest first.
func (r *GormEvidenceRepository) GetPhotos(ctx context.Context, orderID kernel.UUID) ([]*evidence.Photo, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PhotoDTO
	err := r.db.WithContext(ctx).
		Order("uploaded_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	photos := make([]*evidence.Photo, 0, len(dtos))
	for _, dto := range dtos {
		photo, photoErr := photoToDomain(dto)
		if photoErr != nil {
			return nil, photoErr
		}
		photos = append(photos, photo)
	}

	return photos, nil
}

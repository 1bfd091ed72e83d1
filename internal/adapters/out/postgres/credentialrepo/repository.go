package credentialrepo

import (
	"context"
	"errors"
	"time"

	"eventsupply/internal/core/domain/model/credential"
	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCredentialRepository implements CredentialRepository using GORM.
type GormCredentialRepository struct {
	db *gorm.DB
}

// NewGormCredentialRepository creates a new GORM credential repository.
func NewGormCredentialRepository(db *gorm.DB) *GormCredentialRepository {
	return &GormCredentialRepository{db: db}
}

// Add saves a newly issued credential. Prior rows for the same pair stay in
// place; GetLatest makes them unreachable.
func (r *GormCredentialRepository) Add(ctx context.Context, aggregate *credential.Credential) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetLatest retrieves the most recently issued credential for a
// (phone, purpose) pair regardless of its claimed or expired state.
func (r *GormCredentialRepository) GetLatest(
	ctx context.Context,
	phone kernel.Phone,
	purpose credential.Purpose,
) (*credential.Credential, error) {
	if err := errors.Join(phone.Validate(), purpose.Validate()); err != nil {
		return nil, err
	}

	var dto CredentialDTO
	err := r.db.WithContext(ctx).
		Where("phone = ? AND purpose = ?", phone.String(), int(purpose)).
		Order("issued_at DESC").
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("credential", phone.String())
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Claim flips the credential to claimed with a single conditional update.
// The predicate re-checks "unclaimed and unexpired" inside the database, so
// two concurrent claims with the correct code get exactly one winner; the
// loser sees zero affected rows and the uniform rejection.
func (r *GormCredentialRepository) Claim(ctx context.Context, id kernel.UUID, now time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CredentialDTO{}).
		Where("id = ? AND claimed = ? AND expires_at > ?", id.Bytes(), false, now).
		Update("claimed", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return credential.ErrCredentialRejected
	}

	return nil
}

// DeleteExpiredBefore removes rows whose expiry is older than the cutoff and
// reports how many were deleted.
func (r *GormCredentialRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", cutoff).
		Delete(&CredentialDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

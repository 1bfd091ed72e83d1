// Package credentialrepo persists single-use verification codes. The claimed
// flag and expiry live in the row so that claiming can be a single
// conditional update.
package credentialrepo

import (
	"time"

	"eventsupply/internal/core/domain/model/credential"
	"eventsupply/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CredentialDTO represents the database structure for persisting credentials.
// The (phone, purpose, issued_at) index serves the latest-credential lookup.
type CredentialDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Phone     string    `gorm:"index:idx_credentials_latest,priority:1"`
	Code      string
	Purpose   int       `gorm:"index:idx_credentials_latest,priority:2"`
	IssuedAt  time.Time `gorm:"index:idx_credentials_latest,priority:3,sort:desc"`
	ExpiresAt time.Time `gorm:"index"`
	Claimed   bool
}

// TableName specifies the database table name for credentials.
func (CredentialDTO) TableName() string {
	return "credentials"
}

func fromDomain(aggregate *credential.Credential) CredentialDTO {
	return CredentialDTO{
		ID:        aggregate.ID().Bytes(),
		Phone:     aggregate.Phone().String(),
		Code:      aggregate.Code(),
		Purpose:   int(aggregate.Purpose()),
		IssuedAt:  aggregate.IssuedAt(),
		ExpiresAt: aggregate.ExpiresAt(),
		Claimed:   aggregate.Claimed(),
	}
}

func toDomain(dto CredentialDTO) (*credential.Credential, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	return credential.RestoreCredential(
		id,
		phone,
		credential.Purpose(dto.Purpose),
		dto.Code,
		dto.IssuedAt,
		dto.ExpiresAt,
		dto.Claimed,
	)
}

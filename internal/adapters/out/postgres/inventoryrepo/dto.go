// Package inventoryrepo persists per-product availability lines. Availability
// is only ever mutated through conditional updates so that dispatch-time
// deductions cannot drive a line negative.
package inventoryrepo

import (
	"eventsupply/internal/core/domain/model/inventory"
	"eventsupply/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// LineDTO represents the database structure for one availability line.
type LineDTO struct {
	ProductRef uuid.UUID `gorm:"type:uuid;primaryKey"`
	Available  int
}

// TableName specifies the database table name for availability lines.
func (LineDTO) TableName() string {
	return "inventory_lines"
}

func fromDomain(line *inventory.Line) LineDTO {
	return LineDTO{
		ProductRef: line.ProductRef().Bytes(),
		Available:  line.Available(),
	}
}

func toDomain(dto LineDTO) (*inventory.Line, error) {
	productRef, err := kernel.UUIDFromBytes(dto.ProductRef[:])
	if err != nil {
		return nil, err
	}

	return inventory.NewLine(productRef, dto.Available)
}

package queries

import (
	"context"

	"eventsupply/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInventoryQueryHandler reads availability lines from the database.
type GetInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryQueryHandler creates a handler for inventory queries.
func NewGetInventoryQueryHandler(db *gorm.DB) GetInventoryQueryHandler {
	return GetInventoryQueryHandler{db: db}
}

// Handle executes the query, sorted by product for stable output.
func (h GetInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryQuery,
) ([]GetInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lines := make([]GetInventoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_ref,
			available
		FROM inventory_lines
		ORDER BY product_ref
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp       GetInventoryQueryResponse
			productRef uuid.UUID
		)

		if err = rows.Scan(&productRef, &resp.Available); err != nil {
			return nil, err
		}

		resp.ProductRef, err = kernel.UUIDFromBytes(productRef[:])
		if err != nil {
			return nil, err
		}
		lines = append(lines, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

package inventoryrepo

import (
	"context"
	"errors"

	"eventsupply/internal/core/domain/model/inventory"
	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryLedger implements InventoryLedger using GORM. Deductions rely
// on the surrounding transaction: a shortfall error must make the caller roll
// back so that partially applied updates never commit.
type GormInventoryLedger struct {
	db *gorm.DB
}

// NewGormInventoryLedger creates a new GORM inventory ledger.
func NewGormInventoryLedger(db *gorm.DB) *GormInventoryLedger {
	return &GormInventoryLedger{db: db}
}

// CheckAvailability reports every demand the current stock cannot satisfy.
func (r *GormInventoryLedger) CheckAvailability(
	ctx context.Context,
	demands []inventory.Demand,
) ([]inventory.Shortfall, error) {
	shortfalls := make([]inventory.Shortfall, 0)

	for _, demand := range demands {
		available, err := r.availableFor(ctx, demand.ProductRef)
		if err != nil {
			return nil, err
		}
		if available < demand.Quantity {
			shortfalls = append(shortfalls, inventory.Shortfall{
				ProductRef: demand.ProductRef,
				Requested:  demand.Quantity,
				Available:  available,
			})
		}
	}

	return shortfalls, nil
}

// Deduct decrements availability for every demand. A pre-check collects the
// full shortfall report before any line is touched; the decrements themselves
// still carry an "available >= quantity" predicate to close the window against
// concurrent deductions. A predicate failure mid-way reports that line and
// relies on the caller's transaction rollback to undo earlier decrements.
func (r *GormInventoryLedger) Deduct(ctx context.Context, demands []inventory.Demand) error {
	shortfalls, err := r.CheckAvailability(ctx, demands)
	if err != nil {
		return err
	}
	if len(shortfalls) > 0 {
		return &inventory.ShortfallError{Shortfalls: shortfalls}
	}

	for _, demand := range demands {
		result := r.db.WithContext(ctx).
			Model(&LineDTO{}).
			Where("product_ref = ? AND available >= ?", demand.ProductRef.Bytes(), demand.Quantity).
			Update("available", gorm.Expr("available - ?", demand.Quantity))
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			available, readErr := r.availableFor(ctx, demand.ProductRef)
			if readErr != nil {
				return readErr
			}
			return &inventory.ShortfallError{Shortfalls: []inventory.Shortfall{{
				ProductRef: demand.ProductRef,
				Requested:  demand.Quantity,
				Available:  available,
			}}}
		}
	}

	return nil
}

// Restore increments availability for every demand. Missing lines are created
// so compensating flows work for products that were never stocked explicitly.
func (r *GormInventoryLedger) Restore(ctx context.Context, demands []inventory.Demand) error {
	for _, demand := range demands {
		dto := LineDTO{ProductRef: demand.ProductRef.Bytes(), Available: demand.Quantity}
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "product_ref"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"available": gorm.Expr("inventory_lines.available + ?", demand.Quantity),
				}),
			}).
			Create(&dto).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// GetLine retrieves the availability line for one product.
func (r *GormInventoryLedger) GetLine(ctx context.Context, productRef kernel.UUID) (*inventory.Line, error) {
	if err := productRef.Validate(); err != nil {
		return nil, err
	}

	var dto LineDTO
	err := r.db.WithContext(ctx).First(&dto, "product_ref = ?", productRef.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("productRef", productRef.String())
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// UpsertLine creates or replaces the availability line for one product.
func (r *GormInventoryLedger) UpsertLine(ctx context.Context, line *inventory.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := fromDomain(line)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_ref"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// availableFor reads current availability; a product with no line has zero.
func (r *GormInventoryLedger) availableFor(ctx context.Context, productRef kernel.UUID) (int, error) {
	var dto LineDTO
	err := r.db.WithContext(ctx).First(&dto, "product_ref = ?", productRef.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return dto.Available, nil
}

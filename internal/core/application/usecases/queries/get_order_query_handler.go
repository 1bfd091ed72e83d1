package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/core/domain/model/order"
	"eventsupply/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order's detail view from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an errs.ObjectNotFoundError when no
// order exists with the requested identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		resp               GetOrderQueryResponse
		id                 uuid.UUID
		customerRef        uuid.UUID
		status             int
		assignedStaffRef   uuid.NullUUID
		assignedVehicleRef uuid.NullUUID
		approvedAt         sql.NullTime
		dispatchedAt       sql.NullTime
		deliveredAt        sql.NullTime
		returnedAt         sql.NullTime
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_ref,
			event_name,
			event_date,
			supervisor_phone,
			status,
			assigned_staff_ref,
			assigned_vehicle_ref,
			recipient_name,
			damaged_notes,
			missing_notes,
			created_at,
			approved_at,
			dispatched_at,
			delivered_at,
			returned_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&customerRef,
		&resp.EventName,
		&resp.EventDate,
		&resp.SupervisorPhone,
		&status,
		&assignedStaffRef,
		&assignedVehicleRef,
		&resp.RecipientName,
		&resp.DamagedNotes,
		&resp.MissingNotes,
		&resp.CreatedAt,
		&approvedAt,
		&dispatchedAt,
		&deliveredAt,
		&returnedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.CustomerRef, err = kernel.UUIDFromBytes(customerRef[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Status = order.Status(status).String()
	resp.AssignedStaffRef, err = optionalUUID(assignedStaffRef)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.AssignedVehicleRef, err = optionalUUID(assignedVehicleRef)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ApprovedAt = optionalTime(approvedAt)
	resp.DispatchedAt = optionalTime(dispatchedAt)
	resp.DeliveredAt = optionalTime(deliveredAt)
	resp.ReturnedAt = optionalTime(returnedAt)

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]GetOrderItemResponse, error) {
	items := make([]GetOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_ref,
			quantity_requested,
			quantity_dispatched,
			quantity_returned
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_ref
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item       GetOrderItemResponse
			productRef uuid.UUID
		)

		err = rows.Scan(
			&productRef,
			&item.QuantityRequested,
			&item.QuantityDispatched,
			&item.QuantityReturned,
		)
		if err != nil {
			return nil, err
		}

		item.ProductRef, err = kernel.UUIDFromBytes(productRef[:])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func optionalUUID(value uuid.NullUUID) (*kernel.UUID, error) {
	if !value.Valid {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes(value.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func optionalTime(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	return &value.Time
}

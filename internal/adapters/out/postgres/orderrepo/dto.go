// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status column doubles as the compare-and-swap guard for transitions.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber        string    `gorm:"uniqueIndex"`
	CustomerRef        uuid.UUID `gorm:"type:uuid;index"`
	EventName          string
	EventDate          time.Time
	SupervisorPhone    string
	Status             int `gorm:"index"`
	AssignedStaffRef   *uuid.UUID `gorm:"type:uuid"`
	AssignedVehicleRef *uuid.UUID `gorm:"type:uuid"`
	RecipientName      string
	DamagedNotes       string
	MissingNotes       string
	CreatedAt          time.Time
	ApprovedAt         *time.Time
	DispatchedAt       *time.Time
	DeliveredAt        *time.Time
	ReturnedAt         *time.Time
	Items              []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one product line of an order. An order holds each
// product at most once, so (order, product) is the natural key.
type ItemDTO struct {
	OrderID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductRef         uuid.UUID `gorm:"type:uuid;primaryKey"`
	QuantityRequested  int
	QuantityDispatched int
	QuantityReturned   int
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:            aggregate.ID().Bytes(),
			ProductRef:         item.ProductRef().Bytes(),
			QuantityRequested:  item.QuantityRequested(),
			QuantityDispatched: item.QuantityDispatched(),
			QuantityReturned:   item.QuantityReturned(),
		})
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		OrderNumber:        aggregate.OrderNumber(),
		CustomerRef:        aggregate.CustomerRef().Bytes(),
		EventName:          aggregate.EventName(),
		EventDate:          aggregate.EventDate(),
		SupervisorPhone:    aggregate.SupervisorPhone().String(),
		Status:             int(aggregate.Status()),
		AssignedStaffRef:   optionalBytes(aggregate.AssignedStaffRef()),
		AssignedVehicleRef: optionalBytes(aggregate.AssignedVehicleRef()),
		RecipientName:      aggregate.RecipientName(),
		DamagedNotes:       aggregate.DamagedNotes(),
		MissingNotes:       aggregate.MissingNotes(),
		CreatedAt:          aggregate.CreatedAt(),
		ApprovedAt:         aggregate.ApprovedAt(),
		DispatchedAt:       aggregate.DispatchedAt(),
		DeliveredAt:        aggregate.DeliveredAt(),
		ReturnedAt:         aggregate.ReturnedAt(),
		Items:              items,
	}
}

// toDomain converts a database DTO to an order aggregate via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerRef, err := kernel.UUIDFromBytes(dto.CustomerRef[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.SupervisorPhone)
	if err != nil {
		return nil, err
	}

	staffRef, err := optionalUUID(dto.AssignedStaffRef)
	if err != nil {
		return nil, err
	}

	vehicleRef, err := optionalUUID(dto.AssignedVehicleRef)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productRef, refErr := kernel.UUIDFromBytes(itemDTO.ProductRef[:])
		if refErr != nil {
			return nil, refErr
		}

		item, itemErr := order.RestoreItem(
			productRef,
			itemDTO.QuantityRequested,
			itemDTO.QuantityDispatched,
			itemDTO.QuantityReturned,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                 id,
		OrderNumber:        dto.OrderNumber,
		CustomerRef:        customerRef,
		EventName:          dto.EventName,
		EventDate:          dto.EventDate,
		SupervisorPhone:    phone,
		Status:             order.Status(dto.Status),
		AssignedStaffRef:   staffRef,
		AssignedVehicleRef: vehicleRef,
		RecipientName:      dto.RecipientName,
		DamagedNotes:       dto.DamagedNotes,
		MissingNotes:       dto.MissingNotes,
		CreatedAt:          dto.CreatedAt,
		ApprovedAt:         dto.ApprovedAt,
		DispatchedAt:       dto.DispatchedAt,
		DeliveredAt:        dto.DeliveredAt,
		ReturnedAt:         dto.ReturnedAt,
		Items:              items,
	})
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

package order_test

import (
	"strings"
	"testing"
	"time"

	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/core/domain/model/order"
	"eventsupply/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPhone(t *testing.T) kernel.Phone {
	t.Helper()
	phone, err := kernel.NewPhone("966512345678")
	require.NoError(t, err)
	return phone
}

func testItems(t *testing.T, quantities ...int) []*order.Item {
	t.Helper()
	items := make([]*order.Item, 0, len(quantities))
	for _, q := range quantities {
		item, err := order.NewItem(kernel.NewUUID(), q)
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"EVT-20260101-000123",
		kernel.NewUUID(),
		"Spring Fair",
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		testPhone(t),
		testItems(t, 5, 2),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

// advance walks the order to the given status via the normal lifecycle.
func advance(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()
	now := time.Now()

	steps := []struct {
		status order.Status
		do     func() error
	}{
		{order.Approved, func() error { return o.Approve(now) }},
		{order.Preparing, o.StartPreparing},
		{order.Ready, o.MarkReady},
		{order.Dispatched, func() error {
			if err := o.AssignDelivery(kernel.NewUUID(), kernel.NewUUID()); err != nil {
				return err
			}
			return o.Dispatch(now)
		}},
		{order.Delivered, func() error { return o.Deliver(now, "Abdullah") }},
	}

	for _, step := range steps {
		if o.Status() == target {
			return
		}
		require.NoError(t, step.do())
		if step.status == target {
			return
		}
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.AssignedStaffRef())
		assert.Nil(t, o.AssignedVehicleRef())
		assert.Nil(t, o.ApprovedAt())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("rejects empty order number", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "", kernel.NewUUID(), "Spring Fair",
			time.Now(), testPhone(t), testItems(t, 1), time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "EVT-1", kernel.NewUUID(), "Spring Fair",
			time.Now(), testPhone(t), nil, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects duplicate product lines", func(t *testing.T) {
		productRef := kernel.NewUUID()
		first, err := order.NewItem(productRef, 2)
		require.NoError(t, err)
		second, err := order.NewItem(productRef, 3)
		require.NoError(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(), "EVT-1", kernel.NewUUID(), "Spring Fair",
			time.Now(), testPhone(t), []*order.Item{first, second}, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), strings.ToLower("duplicate"))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewItem(kernel.NewUUID(), -3)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects zero product ref", func(t *testing.T) {
		_, err := order.NewItem(kernel.UUID{}, 1)
		require.Error(t, err)
	})
}

func TestOrderApprove(t *testing.T) {
	o := newTestOrder(t)
	now := time.Now()

	require.NoError(t, o.Approve(now))
	assert.Equal(t, order.Approved, o.Status())
	require.NotNil(t, o.ApprovedAt())
	assert.Equal(t, now, *o.ApprovedAt())

	// second approval is an invalid transition
	require.ErrorIs(t, o.Approve(now), order.ErrInvalidTransition)
}

func TestOrderAssignDelivery(t *testing.T) {
	t.Run("allowed while approved, preparing, or ready", func(t *testing.T) {
		for _, target := range []order.Status{order.Approved, order.Preparing, order.Ready} {
			o := newTestOrder(t)
			advance(t, o, target)

			staff, vehicle := kernel.NewUUID(), kernel.NewUUID()
			require.NoError(t, o.AssignDelivery(staff, vehicle))
			assert.True(t, staff.IsEqual(*o.AssignedStaffRef()))
			assert.True(t, vehicle.IsEqual(*o.AssignedVehicleRef()))
		}
	})

	t.Run("rejected while pending", func(t *testing.T) {
		o := newTestOrder(t)
		require.ErrorIs(t, o.AssignDelivery(kernel.NewUUID(), kernel.NewUUID()), order.ErrInvalidTransition)
	})

	t.Run("rejects invalid refs", func(t *testing.T) {
		o := newTestOrder(t)
		advance(t, o, order.Approved)
		require.Error(t, o.AssignDelivery(kernel.UUID{}, kernel.NewUUID()))
	})

	t.Run("reassignment overwrites", func(t *testing.T) {
		o := newTestOrder(t)
		advance(t, o, order.Ready)
		require.NoError(t, o.AssignDelivery(kernel.NewUUID(), kernel.NewUUID()))

		staff := kernel.NewUUID()
		require.NoError(t, o.AssignDelivery(staff, kernel.NewUUID()))
		assert.True(t, staff.IsEqual(*o.AssignedStaffRef()))
	})
}

func TestOrderDispatch(t *testing.T) {
	t.Run("requires assignment", func(t *testing.T) {
		o := newTestOrder(t)
		advance(t, o, order.Ready)

		err := o.Dispatch(time.Now())
		require.ErrorIs(t, err, order.ErrPreconditionUnmet)
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("marks items dispatched and stamps time", func(t *testing.T) {
		o := newTestOrder(t)
		advance(t, o, order.Ready)
		require.NoError(t, o.AssignDelivery(kernel.NewUUID(), kernel.NewUUID()))

		now := time.Now()
		require.NoError(t, o.Dispatch(now))
		assert.Equal(t, order.Dispatched, o.Status())
		require.NotNil(t, o.DispatchedAt())
		assert.Equal(t, now, *o.DispatchedAt())
		for _, item := range o.Items() {
			assert.Equal(t, item.QuantityRequested(), item.QuantityDispatched())
		}
	})

	t.Run("rejected from wrong state", func(t *testing.T) {
		o := newTestOrder(t)
		require.ErrorIs(t, o.Dispatch(time.Now()), order.ErrInvalidTransition)
	})
}

func TestOrderDeliver(t *testing.T) {
	t.Run("requires recipient name", func(t *testing.T) {
		o := newTestOrder(t)
		advance(t, o, order.Dispatched)

		err := o.Deliver(time.Now(), "")
		require.ErrorIs(t, err, order.ErrPreconditionUnmet)
		assert.Equal(t, order.Dispatched, o.Status())
	})

	t.Run("never delivered without dispatch", func(t *testing.T) {
		o := newTestOrder(t)
		advance(t, o, order.Ready)
		require.ErrorIs(t, o.Deliver(time.Now(), "Abdullah"), order.ErrInvalidTransition)
	})

	t.Run("captures recipient and time", func(t *testing.T) {
		o := newTestOrder(t)
		advance(t, o, order.Dispatched)

		now := time.Now()
		require.NoError(t, o.Deliver(now, "Abdullah"))
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, "Abdullah", o.RecipientName())
		require.NotNil(t, o.DeliveredAt())
	})
}

func TestOrderReturn(t *testing.T) {
	t.Run("records returned quantities and notes", func(t *testing.T) {
		o := newTestOrder(t)
		advance(t, o, order.Delivered)

		first := o.Items()[0]
		quantities := map[kernel.UUID]int{first.ProductRef(): 3}

		require.NoError(t, o.Return(time.Now(), quantities, "two chairs broken", "one table missing"))
		assert.Equal(t, order.Returned, o.Status())
		assert.Equal(t, 3, first.QuantityReturned())
		assert.Equal(t, 0, o.Items()[1].QuantityReturned())
		assert.Equal(t, "two chairs broken", o.DamagedNotes())
		assert.Equal(t, "one table missing", o.MissingNotes())
		require.NotNil(t, o.ReturnedAt())
	})

	t.Run("rejects return above dispatched quantity", func(t *testing.T) {
		o := newTestOrder(t)
		advance(t, o, order.Delivered)

		first := o.Items()[0]
		err := o.Return(time.Now(), map[kernel.UUID]int{first.ProductRef(): first.QuantityDispatched() + 1}, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("rejected before delivery", func(t *testing.T) {
		o := newTestOrder(t)
		require.ErrorIs(t, o.Return(time.Now(), nil, "", ""), order.ErrInvalidTransition)
	})
}

func TestOrderCancel(t *testing.T) {
	t.Run("allowed from any pre-dispatch state", func(t *testing.T) {
		for _, target := range []order.Status{order.Pending, order.Approved, order.Preparing, order.Ready} {
			o := newTestOrder(t)
			advance(t, o, target)
			require.NoError(t, o.Cancel(), target.String())
			assert.Equal(t, order.Cancelled, o.Status())
		}
	})

	t.Run("rejected after dispatch", func(t *testing.T) {
		o := newTestOrder(t)
		advance(t, o, order.Dispatched)
		require.ErrorIs(t, o.Cancel(), order.ErrInvalidTransition)
	})
}

func TestOrderTimestampsMonotonic(t *testing.T) {
	o := newTestOrder(t)

	t0 := time.Now()
	require.NoError(t, o.Approve(t0))
	require.NoError(t, o.StartPreparing())
	require.NoError(t, o.MarkReady())
	require.NoError(t, o.AssignDelivery(kernel.NewUUID(), kernel.NewUUID()))

	t1 := t0.Add(time.Minute)
	require.NoError(t, o.Dispatch(t1))
	t2 := t1.Add(time.Hour)
	require.NoError(t, o.Deliver(t2, "Abdullah"))
	t3 := t2.Add(time.Hour)
	require.NoError(t, o.Return(t3, nil, "", ""))

	assert.True(t, !o.ApprovedAt().After(*o.DispatchedAt()))
	assert.True(t, !o.DispatchedAt().After(*o.DeliveredAt()))
	assert.True(t, !o.DeliveredAt().After(*o.ReturnedAt()))
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round-trips full state", func(t *testing.T) {
		o := newTestOrder(t)
		advance(t, o, order.Delivered)

		items := make([]*order.Item, 0, len(o.Items()))
		for _, item := range o.Items() {
			restored, err := order.RestoreItem(
				item.ProductRef(), item.QuantityRequested(), item.QuantityDispatched(), item.QuantityReturned(),
			)
			require.NoError(t, err)
			items = append(items, restored)
		}

		restored, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:                 o.ID(),
			OrderNumber:        o.OrderNumber(),
			CustomerRef:        o.CustomerRef(),
			EventName:          o.EventName(),
			EventDate:          o.EventDate(),
			SupervisorPhone:    o.SupervisorPhone(),
			Status:             o.Status(),
			AssignedStaffRef:   o.AssignedStaffRef(),
			AssignedVehicleRef: o.AssignedVehicleRef(),
			RecipientName:      o.RecipientName(),
			CreatedAt:          o.CreatedAt(),
			ApprovedAt:         o.ApprovedAt(),
			DispatchedAt:       o.DispatchedAt(),
			DeliveredAt:        o.DeliveredAt(),
			Items:              items,
		})
		require.NoError(t, err)
		assert.True(t, o.IsEqual(restored))
		assert.Equal(t, order.Delivered, restored.Status())
		assert.Equal(t, "Abdullah", restored.RecipientName())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:              o.ID(),
			OrderNumber:     o.OrderNumber(),
			CustomerRef:     o.CustomerRef(),
			EventName:       o.EventName(),
			EventDate:       o.EventDate(),
			SupervisorPhone: o.SupervisorPhone(),
			Status:          order.Status(99),
			CreatedAt:       o.CreatedAt(),
			Items:           testItems(t, 1),
		})
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	number, err := order.NewOrderNumber(now)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(number, "EVT-20260830-"))
	assert.Len(t, number, len("EVT-20260830-123456"))
}

package order_test

import (
	"errors"
	"testing"

	"eventsupply/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.Pending, "Pending"},
		{order.Approved, "Approved"},
		{order.Preparing, "Preparing"},
		{order.Ready, "Ready"},
		{order.Dispatched, "Dispatched"},
		{order.Delivered, "Delivered"},
		{order.Returned, "Returned"},
		{order.Cancelled, "Cancelled"},
		{order.Status(99), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.status.String())
	}
}

func TestStatusValidate(t *testing.T) {
	for _, s := range []order.Status{
		order.Pending, order.Approved, order.Preparing, order.Ready,
		order.Dispatched, order.Delivered, order.Returned, order.Cancelled,
	} {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatusTransitionTable(t *testing.T) {
	allowed := []struct {
		from, to order.Status
	}{
		{order.Pending, order.Approved},
		{order.Pending, order.Cancelled},
		{order.Approved, order.Preparing},
		{order.Approved, order.Cancelled},
		{order.Preparing, order.Ready},
		{order.Preparing, order.Cancelled},
		{order.Ready, order.Dispatched},
		{order.Ready, order.Cancelled},
		{order.Dispatched, order.Delivered},
		{order.Delivered, order.Returned},
	}

	for _, tt := range allowed {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			next, err := tt.from.TransitionTo(tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.to, next)
		})
	}
}

func TestStatusTransitionTo_Rejected(t *testing.T) {
	rejected := []struct {
		from, to order.Status
	}{
		{order.Pending, order.Preparing},   // no skipping
		{order.Pending, order.Dispatched},  // no skipping
		{order.Pending, order.Delivered},   // no skipping
		{order.Approved, order.Ready},      // no skipping
		{order.Ready, order.Delivered},     // no skipping
		{order.Dispatched, order.Cancelled}, // cancel only before dispatch
		{order.Delivered, order.Cancelled},
		{order.Delivered, order.Pending},
		{order.Returned, order.Delivered}, // terminal
		{order.Cancelled, order.Approved}, // terminal
		{order.Unknown, order.Pending},
	}

	for _, tt := range rejected {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			_, err := tt.from.TransitionTo(tt.to)
			require.ErrorIs(t, err, order.ErrInvalidTransition)

			var transitionErr *order.InvalidTransitionError
			require.True(t, errors.As(err, &transitionErr))
			assert.Equal(t, tt.from, transitionErr.From)
			assert.Equal(t, tt.to, transitionErr.To)
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Returned.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())

	for _, s := range []order.Status{order.Pending, order.Approved, order.Preparing, order.Ready, order.Dispatched} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatusErrStaleStatus(t *testing.T) {
	require.ErrorIs(t, order.ErrStaleStatus, order.ErrInvalidTransition)
}

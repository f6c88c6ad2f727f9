//go:build unit

package workflow_test

import (
	"testing"
	"time"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/usecase/workflow"
	"fieldbook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

func newCheckout() *workflow.Checkout {
	return workflow.NewCheckout("c1", "u1", builder.NewListingBuilder().WithPrice(100000).BuildDomain())
}

func TestCheckout_Defaults(t *testing.T) {
	c := newCheckout()
	assert.Equal(t, workflow.StateSelectingDetails, c.State)
	assert.Equal(t, 1, c.Duration)
	assert.Equal(t, int64(100000), c.TotalPrice)
	assert.True(t, c.Date.IsZero())
}

func TestCheckout_Selections(t *testing.T) {
	c := newCheckout()

	assert.ErrorIs(t, c.SelectDate(today.AddDate(0, 0, -1), today), workflow.ErrDateInPast)
	require.NoError(t, c.SelectDate(today, today))

	assert.ErrorIs(t, c.SelectTime("07:00"), booking.ErrInvalidTimeSlot)
	assert.ErrorIs(t, c.SelectTime("18:30"), booking.ErrInvalidTimeSlot)
	require.NoError(t, c.SelectTime("23:00"))

	cases := []struct {
		in, want int
	}{
		{in: 0, want: 1},
		{in: -2, want: 1},
		{in: 3, want: 3},
		{in: 9, want: 5},
	}
	for _, tc := range cases {
		require.NoError(t, c.SelectDuration(tc.in))
		assert.Equal(t, tc.want, c.Duration)
		assert.Equal(t, int64(100000)*int64(tc.want), c.TotalPrice)
	}
}

func TestCheckout_ContinueGuard(t *testing.T) {
	t.Run("blocked without a time", func(t *testing.T) {
		c := newCheckout()
		require.NoError(t, c.SelectDate(today, today))
		assert.ErrorIs(t, c.Continue(), workflow.ErrDetailsIncomplete)
		assert.Equal(t, workflow.StateSelectingDetails, c.State)
	})

	t.Run("blocked without a date", func(t *testing.T) {
		c := newCheckout()
		require.NoError(t, c.SelectTime("18:00"))
		assert.ErrorIs(t, c.Continue(), workflow.ErrDetailsIncomplete)
	})

	t.Run("moves to payment, cancel comes back with the selection intact", func(t *testing.T) {
		c := newCheckout()
		require.NoError(t, c.SelectDate(today, today))
		require.NoError(t, c.SelectTime("18:00"))
		require.NoError(t, c.Continue())
		assert.Equal(t, workflow.StateAwaitingPayment, c.State)

		assert.ErrorIs(t, c.SelectTime("19:00"), workflow.ErrInvalidTransition)
		assert.ErrorIs(t, c.Continue(), workflow.ErrInvalidTransition)

		require.NoError(t, c.CancelPayment())
		assert.Equal(t, workflow.StateSelectingDetails, c.State)
		assert.Equal(t, "18:00", c.Time)
		assert.ErrorIs(t, c.CancelPayment(), workflow.ErrInvalidTransition)
	})
}

func TestCheckout_ConfirmAndClose(t *testing.T) {
	c := newCheckout()
	assert.ErrorIs(t, c.Confirm(workflow.Confirmation{}), workflow.ErrInvalidTransition)

	require.NoError(t, c.SelectDate(today, today))
	require.NoError(t, c.SelectTime("18:00"))
	require.NoError(t, c.SelectDuration(2))
	require.NoError(t, c.Continue())
	require.NoError(t, c.Confirm(workflow.Confirmation{VerificationCode: "654321"}))
	assert.Equal(t, workflow.StateConfirmed, c.State)
	require.NotNil(t, c.Confirmation)

	c.Close()
	assert.Equal(t, workflow.StateSelectingDetails, c.State)
	assert.True(t, c.Date.IsZero())
	assert.Empty(t, c.Time)
	assert.Equal(t, 1, c.Duration)
	assert.Nil(t, c.Confirmation)
}

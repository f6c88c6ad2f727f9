//go:build unit

package booking_test

import (
	"testing"
	"time"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/domain/listing"
	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/pkg/idgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tashkent = time.FixedZone("Asia/Tashkent", 5*60*60)

func newFactory(now time.Time) *booking.Factory {
	return booking.NewFactory(
		clock.NewMockClock(now),
		booking.NewHourlyPriceCalculator(),
		idgen.NewSequence("b", "654321"),
	)
}

func TestFactory_CreateBooking(t *testing.T) {
	now := time.Date(2026, 6, 10, 15, 30, 0, 0, tashkent)
	arena := &listing.Listing{ID: "1", Name: "Green Arena", Location: "Chilonzor", PricePerHour: 100000, Images: []string{"arena.jpg"}}

	t.Run("total is price times duration", func(t *testing.T) {
		b, err := newFactory(now).CreateBooking(arena, booking.Request{
			FieldID: "1", UserID: "u1", Date: "2026-06-12", Time: "18:00", Duration: 3,
		})
		require.NoError(t, err)

		assert.Equal(t, "b1", b.ID)
		assert.Equal(t, int64(300000), b.TotalPrice)
		assert.Equal(t, "654321", b.VerificationCode)
		assert.Equal(t, booking.StatusUpcoming, b.Status)
		assert.Equal(t, "Green Arena", b.FieldName)
		assert.Equal(t, "arena.jpg", b.Image)
		assert.False(t, b.IsVerified)
	})

	t.Run("today is upcoming, yesterday is completed", func(t *testing.T) {
		b, err := newFactory(now).CreateBooking(arena, booking.Request{Date: "2026-06-10", Time: "08:00", Duration: 1})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusUpcoming, b.Status)

		b, err = newFactory(now).CreateBooking(arena, booking.Request{Date: "2026-06-09", Time: "08:00", Duration: 1})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCompleted, b.Status)
	})

	t.Run("unknown listing costs nothing", func(t *testing.T) {
		b, err := newFactory(now).CreateBooking(nil, booking.Request{FieldID: "404", Date: "2026-06-12", Time: "09:00", Duration: 2})
		require.NoError(t, err)
		assert.Zero(t, b.TotalPrice)
		assert.Equal(t, booking.UnknownFieldName, b.FieldName)
	})

	t.Run("duration is clamped", func(t *testing.T) {
		b, err := newFactory(now).CreateBooking(arena, booking.Request{Date: "2026-06-12", Time: "09:00", Duration: 9})
		require.NoError(t, err)
		assert.Equal(t, booking.MaxDuration, b.Duration)
		assert.Equal(t, int64(500000), b.TotalPrice)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := newFactory(now).CreateBooking(arena, booking.Request{Date: "tomorrow", Time: "09:00"})
		require.ErrorIs(t, err, booking.ErrInvalidDate)

		_, err = newFactory(now).CreateBooking(arena, booking.Request{Date: "2026-06-12", Time: "07:00"})
		require.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})
}

func TestValueObjects(t *testing.T) {
	t.Run("time slots", func(t *testing.T) {
		slots := booking.TimeSlots()
		require.Len(t, slots, 16)
		assert.Equal(t, "08:00", slots[0])
		assert.Equal(t, "23:00", slots[15])
	})

	t.Run("clamp duration", func(t *testing.T) {
		assert.Equal(t, 1, booking.ClampDuration(0))
		assert.Equal(t, 1, booking.ClampDuration(-3))
		assert.Equal(t, 4, booking.ClampDuration(4))
		assert.Equal(t, 5, booking.ClampDuration(6))
	})

	t.Run("parse date from timestamp", func(t *testing.T) {
		d, err := booking.ParseDate("2026-06-12T22:00:00Z", tashkent)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 6, 13, 0, 0, 0, 0, tashkent), d)
	})

	t.Run("code format", func(t *testing.T) {
		assert.NoError(t, booking.ValidateCodeFormat("012345"))
		assert.ErrorIs(t, booking.ValidateCodeFormat("12345"), booking.ErrInvalidCode)
		assert.ErrorIs(t, booking.ValidateCodeFormat("12a456"), booking.ErrInvalidCode)
	})

	t.Run("mark verified", func(t *testing.T) {
		b := booking.Booking{Status: booking.StatusPending}
		b.MarkVerified()
		assert.True(t, b.IsVerified)
		assert.Equal(t, booking.StatusVerified, b.Status)
	})
}

//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/infra/storage"
	"fieldbook/internal/usecase"
	"fieldbook/tests/common/builder"
	usecasemock "fieldbook/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRenterBookings(t *testing.T) (usecase.RenterBookings, *usecasemock.MockBookingsFetcher, *storage.MemoryStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	fetcher := usecasemock.NewMockBookingsFetcher(ctrl)
	blobs := storage.NewMemoryStore()
	store := storage.NewRenterBookingsStore(blobs, discardLogger())
	return usecase.NewRenterBookings(fetcher, store, discardLogger()), fetcher, blobs
}

func TestRenterBookings_AddPrependsAndPersists(t *testing.T) {
	ctx := context.Background()
	cache, _, blobs := newRenterBookings(t)

	first := builder.NewBookingBuilder().WithID("b1").BuildDomain()
	second := builder.NewBookingBuilder().WithID("b2").BuildDomain()
	require.NoError(t, cache.Add(ctx, "u1", first))
	require.NoError(t, cache.Add(ctx, "u1", second))

	got := cache.List(ctx, "u1")
	require.Len(t, got, 2)
	assert.Equal(t, "b2", got[0].ID)
	assert.Equal(t, "b1", got[1].ID)
	assert.True(t, first.Date.Equal(got[1].Date))

	var persisted []booking.Booking
	found, err := storage.LoadJSON(ctx, blobs, storage.RenterBookingsKey("u1"), &persisted)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, persisted, 2)

	assert.Empty(t, cache.List(ctx, "someone-else"))
}

func TestRenterBookings_Load(t *testing.T) {
	ctx := context.Background()
	local := builder.NewBookingBuilder().WithID("local").BuildDomain()

	t.Run("empty remote answer keeps the cache", func(t *testing.T) {
		cache, fetcher, _ := newRenterBookings(t)
		require.NoError(t, cache.Add(ctx, "u1", local))
		fetcher.EXPECT().GetBookingsForUser(gomock.Any(), "u1").Return([]booking.Booking{}, nil)

		got := cache.Load(ctx, "u1")
		require.Len(t, got, 1)
		assert.Equal(t, "local", got[0].ID)
	})

	t.Run("failed fetch keeps the cache", func(t *testing.T) {
		cache, fetcher, _ := newRenterBookings(t)
		require.NoError(t, cache.Add(ctx, "u1", local))
		fetcher.EXPECT().GetBookingsForUser(gomock.Any(), "u1").Return(nil, errors.New("offline"))

		got := cache.Load(ctx, "u1")
		require.Len(t, got, 1)
		assert.Equal(t, "local", got[0].ID)
	})

	t.Run("non-empty remote answer replaces and persists", func(t *testing.T) {
		cache, fetcher, _ := newRenterBookings(t)
		require.NoError(t, cache.Add(ctx, "u1", local))
		remote := []booking.Booking{
			builder.NewBookingBuilder().WithID("r1").BuildDomain(),
			builder.NewBookingBuilder().WithID("r2").BuildDomain(),
		}
		fetcher.EXPECT().GetBookingsForUser(gomock.Any(), "u1").Return(remote, nil)

		got := cache.Load(ctx, "u1")
		require.Len(t, got, 2)
		assert.Equal(t, "r1", got[0].ID)

		stored := cache.List(ctx, "u1")
		require.Len(t, stored, 2)
		assert.Equal(t, "r2", stored[1].ID)
	})
}

func TestRenterBookings_CorruptBlobStartsEmpty(t *testing.T) {
	ctx := context.Background()
	cache, _, blobs := newRenterBookings(t)
	require.NoError(t, blobs.Save(ctx, storage.RenterBookingsKey("u1"), []byte("{not json")))

	assert.Empty(t, cache.List(ctx, "u1"))

	require.NoError(t, cache.Add(ctx, "u1", builder.NewBookingBuilder().BuildDomain()))
	assert.Len(t, cache.List(ctx, "u1"), 1)
}

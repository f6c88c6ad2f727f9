package usecase

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"fieldbook/internal/domain/booking"
)

type BookingsFetcher interface {
	GetBookingsForUser(ctx context.Context, userID string) ([]booking.Booking, error)
}

type RenterBookingStore interface {
	Load(ctx context.Context, userID string) []booking.Booking
	Save(ctx context.Context, userID string, list []booking.Booking) error
}

// RenterBookings keeps each renter's own bookings, newest first, in durable
// storage. The backend is consulted on Load but never overrides the cache
// with an empty answer.
type RenterBookings interface {
	Add(ctx context.Context, userID string, b booking.Booking) error
	List(ctx context.Context, userID string) []booking.Booking
	Load(ctx context.Context, userID string) []booking.Booking
}

type renterBookingsImpl struct {
	fetcher BookingsFetcher
	store   RenterBookingStore
	logger  *slog.Logger

	mu sync.Mutex
}

func NewRenterBookings(fetcher BookingsFetcher, store RenterBookingStore, logger *slog.Logger) RenterBookings {
	return &renterBookingsImpl{
		fetcher: fetcher,
		store:   store,
		logger:  logger,
	}
}

func (r *renterBookingsImpl) Add(ctx context.Context, userID string, b booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.store.Load(ctx, userID)
	list = slices.Insert(list, 0, b)
	return r.store.Save(ctx, userID, list)
}

func (r *renterBookingsImpl) List(ctx context.Context, userID string) []booking.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Load(ctx, userID)
}

// Load reconciles with the backend. Only a non-empty answer replaces the
// cached list; errors are logged and the cache is returned as is.
func (r *renterBookingsImpl) Load(ctx context.Context, userID string) []booking.Booking {
	remote, err := r.fetcher.GetBookingsForUser(ctx, userID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		r.logger.Warn("failed to fetch bookings, keeping local list", "user_id", userID, "error", err)
		return r.store.Load(ctx, userID)
	}
	if len(remote) == 0 {
		return r.store.Load(ctx, userID)
	}

	if err := r.store.Save(ctx, userID, remote); err != nil {
		r.logger.Warn("failed to persist fetched bookings", "user_id", userID, "error", err)
	}
	return remote
}

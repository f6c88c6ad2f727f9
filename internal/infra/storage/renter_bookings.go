package storage

import (
	"context"
	"log/slog"

	"fieldbook/internal/domain/booking"
)

const renterBookingsKeyPrefix = "bookings:"

func RenterBookingsKey(userID string) string {
	return renterBookingsKeyPrefix + userID
}

// RenterBookingsStore persists a renter's cached booking list. Dates are
// stored as RFC 3339 strings.
type RenterBookingsStore struct {
	blobs  BlobStore
	logger *slog.Logger
}

func NewRenterBookingsStore(blobs BlobStore, logger *slog.Logger) *RenterBookingsStore {
	return &RenterBookingsStore{blobs: blobs, logger: logger}
}

// Load returns the cached list. Missing or corrupt data yields an empty list.
func (s *RenterBookingsStore) Load(ctx context.Context, userID string) []booking.Booking {
	var list []booking.Booking
	if _, err := LoadJSON(ctx, s.blobs, RenterBookingsKey(userID), &list); err != nil {
		s.logger.Warn("failed to read renter bookings, starting empty", "user_id", userID, "error", err)
		return []booking.Booking{}
	}
	if list == nil {
		return []booking.Booking{}
	}
	return list
}

func (s *RenterBookingsStore) Save(ctx context.Context, userID string, list []booking.Booking) error {
	if err := SaveJSON(ctx, s.blobs, RenterBookingsKey(userID), list); err != nil {
		s.logger.Warn("failed to save renter bookings", "user_id", userID, "error", err)
		return err
	}
	return nil
}

package shared

import (
	"context"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/domain/listing"
	"fieldbook/internal/domain/promotion"
)

// Backend is a booking data strategy. The local simulation and the remote
// HTTP client both implement it; one is chosen at construction.
type Backend interface {
	ListListings(ctx context.Context) ([]listing.Listing, error)
	GetListing(ctx context.Context, id string) (listing.Listing, error)
	SearchListings(ctx context.Context, query string) ([]listing.Listing, error)
	ListAdPackages(ctx context.Context) ([]promotion.AdPackage, error)
	ListTimeSlots(ctx context.Context) ([]string, error)

	CreateBooking(ctx context.Context, params CreateBookingParams) (booking.Booking, error)
	GetBookingsForUser(ctx context.Context, userID string) ([]booking.Booking, error)

	GetOwnerFields(ctx context.Context, ownerID string) ([]listing.Listing, error)
	CreateOwnerField(ctx context.Context, ownerID string, p listing.Patch) (listing.Listing, error)
	UpdateOwnerField(ctx context.Context, ownerID, fieldID string, p listing.Patch) (listing.Listing, error)
	DeleteOwnerField(ctx context.Context, ownerID, fieldID string) error

	GetOwnerBookings(ctx context.Context, ownerID string, filter OwnerBookingFilter) ([]booking.Booking, error)
	VerifyBooking(ctx context.Context, ownerID, bookingID, code string) (VerifyResult, error)
	GetOwnerStats(ctx context.Context, ownerID string) (OwnerStats, error)
	PromoteField(ctx context.Context, ownerID, fieldID string, req promotion.Request) (listing.Listing, error)
}

// EventPublisher announces domain events. Publishing is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, event string, payload any)
}

const (
	EventBookingCreated  = "booking.created"
	EventBookingVerified = "booking.verified"
	EventFieldCreated    = "field.created"
	EventFieldDeleted    = "field.deleted"
	EventFieldPromoted   = "field.promoted"
)

package usecase

import (
	"context"
	"log/slog"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/domain/listing"
	"fieldbook/internal/domain/promotion"
	"fieldbook/internal/pkg/simnet"
	"fieldbook/internal/usecase/shared"
)

// BookingService is the single entry point for booking data. Every call
// makes one simulated round trip before reaching the chosen backend.
type BookingService interface {
	shared.Backend
	BrowseListings(ctx context.Context, q listing.BrowseQuery) ([]listing.Listing, error)
	Home(ctx context.Context, q listing.BrowseQuery) (listing.HomeView, error)
}

type bookingServiceImpl struct {
	backend shared.Backend
	net     simnet.Network
	events  shared.EventPublisher
	logger  *slog.Logger
}

func NewBookingService(
	backend shared.Backend,
	net simnet.Network,
	events shared.EventPublisher,
	logger *slog.Logger,
) BookingService {
	return &bookingServiceImpl{
		backend: backend,
		net:     net,
		events:  events,
		logger:  logger,
	}
}

func (s *bookingServiceImpl) ListListings(ctx context.Context) ([]listing.Listing, error) {
	return simnet.Call(ctx, s.net, simnet.OpListListings, func() ([]listing.Listing, error) {
		return s.backend.ListListings(ctx)
	})
}

func (s *bookingServiceImpl) GetListing(ctx context.Context, id string) (listing.Listing, error) {
	return simnet.Call(ctx, s.net, simnet.OpGetListing, func() (listing.Listing, error) {
		return s.backend.GetListing(ctx, id)
	})
}

func (s *bookingServiceImpl) SearchListings(ctx context.Context, query string) ([]listing.Listing, error) {
	return simnet.Call(ctx, s.net, simnet.OpSearchListings, func() ([]listing.Listing, error) {
		return s.backend.SearchListings(ctx, query)
	})
}

func (s *bookingServiceImpl) BrowseListings(ctx context.Context, q listing.BrowseQuery) ([]listing.Listing, error) {
	all, err := s.ListListings(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Browse(all, q), nil
}

func (s *bookingServiceImpl) Home(ctx context.Context, q listing.BrowseQuery) (listing.HomeView, error) {
	all, err := s.ListListings(ctx)
	if err != nil {
		return listing.HomeView{}, err
	}
	return listing.Home(all, q), nil
}

func (s *bookingServiceImpl) ListAdPackages(ctx context.Context) ([]promotion.AdPackage, error) {
	return simnet.Call(ctx, s.net, simnet.OpListAdPackages, func() ([]promotion.AdPackage, error) {
		return s.backend.ListAdPackages(ctx)
	})
}

func (s *bookingServiceImpl) ListTimeSlots(ctx context.Context) ([]string, error) {
	return simnet.Call(ctx, s.net, simnet.OpListTimeSlots, func() ([]string, error) {
		return s.backend.ListTimeSlots(ctx)
	})
}

func (s *bookingServiceImpl) CreateBooking(ctx context.Context, params shared.CreateBookingParams) (booking.Booking, error) {
	created, err := simnet.Call(ctx, s.net, simnet.OpCreateBooking, func() (booking.Booking, error) {
		return s.backend.CreateBooking(ctx, params)
	})
	if err != nil {
		s.logger.Warn("create booking failed", "field_id", params.FieldID, "user_id", params.UserID, "error", err)
		return booking.Booking{}, err
	}

	s.logger.Info("booking created", "booking_id", created.ID, "field_id", created.FieldID, "total_price", created.TotalPrice)
	s.events.Publish(ctx, shared.EventBookingCreated, created)
	return created, nil
}

func (s *bookingServiceImpl) GetBookingsForUser(ctx context.Context, userID string) ([]booking.Booking, error) {
	return simnet.Call(ctx, s.net, simnet.OpGetBookingsForUser, func() ([]booking.Booking, error) {
		return s.backend.GetBookingsForUser(ctx, userID)
	})
}

func (s *bookingServiceImpl) GetOwnerFields(ctx context.Context, ownerID string) ([]listing.Listing, error) {
	return simnet.Call(ctx, s.net, simnet.OpGetOwnerFields, func() ([]listing.Listing, error) {
		return s.backend.GetOwnerFields(ctx, ownerID)
	})
}

func (s *bookingServiceImpl) CreateOwnerField(ctx context.Context, ownerID string, p listing.Patch) (listing.Listing, error) {
	created, err := simnet.Call(ctx, s.net, simnet.OpCreateOwnerField, func() (listing.Listing, error) {
		return s.backend.CreateOwnerField(ctx, ownerID, p)
	})
	if err != nil {
		return listing.Listing{}, err
	}

	s.logger.Info("owner field created", "owner_id", ownerID, "field_id", created.ID)
	s.events.Publish(ctx, shared.EventFieldCreated, created)
	return created, nil
}

func (s *bookingServiceImpl) UpdateOwnerField(ctx context.Context, ownerID, fieldID string, p listing.Patch) (listing.Listing, error) {
	return simnet.Call(ctx, s.net, simnet.OpUpdateOwnerField, func() (listing.Listing, error) {
		return s.backend.UpdateOwnerField(ctx, ownerID, fieldID, p)
	})
}

func (s *bookingServiceImpl) DeleteOwnerField(ctx context.Context, ownerID, fieldID string) error {
	_, err := simnet.Call(ctx, s.net, simnet.OpDeleteOwnerField, func() (struct{}, error) {
		return struct{}{}, s.backend.DeleteOwnerField(ctx, ownerID, fieldID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("owner field deleted", "owner_id", ownerID, "field_id", fieldID)
	s.events.Publish(ctx, shared.EventFieldDeleted, map[string]string{"ownerId": ownerID, "fieldId": fieldID})
	return nil
}

func (s *bookingServiceImpl) GetOwnerBookings(ctx context.Context, ownerID string, filter shared.OwnerBookingFilter) ([]booking.Booking, error) {
	return simnet.Call(ctx, s.net, simnet.OpGetOwnerBookings, func() ([]booking.Booking, error) {
		return s.backend.GetOwnerBookings(ctx, ownerID, filter)
	})
}

func (s *bookingServiceImpl) VerifyBooking(ctx context.Context, ownerID, bookingID, code string) (shared.VerifyResult, error) {
	result, err := simnet.Call(ctx, s.net, simnet.OpVerifyBooking, func() (shared.VerifyResult, error) {
		return s.backend.VerifyBooking(ctx, ownerID, bookingID, code)
	})
	if err != nil {
		return shared.VerifyResult{}, err
	}

	if !result.Verified {
		s.logger.Info("verification code mismatch", "owner_id", ownerID, "booking_id", bookingID, "attempts_left", result.AttemptsLeft)
		return result, nil
	}
	s.logger.Info("booking verified", "owner_id", ownerID, "booking_id", bookingID)
	s.events.Publish(ctx, shared.EventBookingVerified, result.Booking)
	return result, nil
}

func (s *bookingServiceImpl) GetOwnerStats(ctx context.Context, ownerID string) (shared.OwnerStats, error) {
	return simnet.Call(ctx, s.net, simnet.OpGetOwnerStats, func() (shared.OwnerStats, error) {
		return s.backend.GetOwnerStats(ctx, ownerID)
	})
}

func (s *bookingServiceImpl) PromoteField(ctx context.Context, ownerID, fieldID string, req promotion.Request) (listing.Listing, error) {
	promoted, err := simnet.Call(ctx, s.net, simnet.OpPromoteField, func() (listing.Listing, error) {
		return s.backend.PromoteField(ctx, ownerID, fieldID, req)
	})
	if err != nil {
		return listing.Listing{}, err
	}

	s.logger.Info("field promoted", "owner_id", ownerID, "field_id", fieldID, "package", req.PackageID)
	s.events.Publish(ctx, shared.EventFieldPromoted, map[string]any{
		"ownerId":   ownerID,
		"fieldId":   fieldID,
		"packageId": req.PackageID,
	})
	return promoted, nil
}

package workflow

import (
	"context"
	"log/slog"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/domain/listing"
	"fieldbook/internal/domain/payment"
	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/pkg/idgen"
	"fieldbook/internal/usecase/shared"
)

type BookingGateway interface {
	GetListing(ctx context.Context, id string) (listing.Listing, error)
	CreateBooking(ctx context.Context, params shared.CreateBookingParams) (booking.Booking, error)
}

type PaymentProcessor interface {
	Pay(ctx context.Context, amount int64, details payment.Details) (payment.Receipt, error)
}

type BookingRecorder interface {
	Add(ctx context.Context, userID string, b booking.Booking) error
}

// DetailsUpdate carries the selections made in one step. Nil fields are left alone.
type DetailsUpdate struct {
	Date     *string
	Time     *string
	Duration *int
}

type Service interface {
	Start(ctx context.Context, renterID, fieldID string) (Checkout, error)
	Get(ctx context.Context, renterID, id string) (Checkout, error)
	UpdateDetails(ctx context.Context, renterID, id string, u DetailsUpdate) (Checkout, error)
	Continue(ctx context.Context, renterID, id string) (Checkout, error)
	CancelPayment(ctx context.Context, renterID, id string) (Checkout, error)
	Pay(ctx context.Context, renterID, id string, details payment.Details) (Checkout, error)
	Close(ctx context.Context, renterID, id string) (Checkout, error)
}

type serviceImpl struct {
	registry *Registry
	gateway  BookingGateway
	payments PaymentProcessor
	recorder BookingRecorder
	ids      idgen.Generator
	clock    clock.Clock
	logger   *slog.Logger
}

func NewService(
	registry *Registry,
	gateway BookingGateway,
	payments PaymentProcessor,
	recorder BookingRecorder,
	ids idgen.Generator,
	clk clock.Clock,
	logger *slog.Logger,
) Service {
	return &serviceImpl{
		registry: registry,
		gateway:  gateway,
		payments: payments,
		recorder: recorder,
		ids:      ids,
		clock:    clk,
		logger:   logger,
	}
}

func (s *serviceImpl) Start(ctx context.Context, renterID, fieldID string) (Checkout, error) {
	field, err := s.gateway.GetListing(ctx, fieldID)
	if err != nil {
		return Checkout{}, err
	}

	c := NewCheckout(s.ids.NewID(), renterID, field)
	s.registry.Put(c)
	return snapshot(c), nil
}

func (s *serviceImpl) Get(_ context.Context, renterID, id string) (Checkout, error) {
	return s.registry.With(renterID, id, func(*Checkout) error { return nil })
}

// UpdateDetails applies every selection or none of them.
func (s *serviceImpl) UpdateDetails(_ context.Context, renterID, id string, u DetailsUpdate) (Checkout, error) {
	return s.registry.With(renterID, id, func(c *Checkout) error {
		next := *c
		if u.Date != nil {
			today := clock.Today(s.clock)
			date, err := booking.ParseDate(*u.Date, today.Location())
			if err != nil {
				return err
			}
			if err := next.SelectDate(date, today); err != nil {
				return err
			}
		}
		if u.Time != nil {
			if err := next.SelectTime(*u.Time); err != nil {
				return err
			}
		}
		if u.Duration != nil {
			if err := next.SelectDuration(*u.Duration); err != nil {
				return err
			}
		}
		*c = next
		return nil
	})
}

func (s *serviceImpl) Continue(_ context.Context, renterID, id string) (Checkout, error) {
	return s.registry.With(renterID, id, func(c *Checkout) error { return c.Continue() })
}

func (s *serviceImpl) CancelPayment(_ context.Context, renterID, id string) (Checkout, error) {
	return s.registry.With(renterID, id, func(c *Checkout) error { return c.CancelPayment() })
}

// Close resets the dialog. A confirmed checkout is finished, so closing it
// also drops it from the registry.
func (s *serviceImpl) Close(_ context.Context, renterID, id string) (Checkout, error) {
	var finished bool
	c, err := s.registry.With(renterID, id, func(c *Checkout) error {
		finished = c.State == StateConfirmed
		c.Close()
		return nil
	})
	if err == nil && finished {
		s.registry.Remove(id)
	}
	return c, err
}

// Pay charges the renter and books the slot. A failed booking still confirms
// the checkout with a locally issued code; only invalid payment details or a
// cancelled context surface as errors.
func (s *serviceImpl) Pay(ctx context.Context, renterID, id string, details payment.Details) (Checkout, error) {
	return s.registry.With(renterID, id, func(c *Checkout) error {
		if c.State != StateAwaitingPayment {
			return ErrInvalidTransition
		}

		receipt, err := s.payments.Pay(ctx, c.TotalPrice, details)
		if err != nil {
			return err
		}

		conf := Confirmation{
			FieldID:       c.Field.ID,
			FieldName:     c.Field.Name,
			Location:      c.Field.Location,
			Date:          c.Date,
			Time:          c.Time,
			Duration:      c.Duration,
			TotalPrice:    c.TotalPrice,
			PaymentMethod: receipt.Method,
		}

		created, err := s.gateway.CreateBooking(ctx, shared.CreateBookingParams{
			FieldID:  c.Field.ID,
			UserID:   renterID,
			Date:     c.Date.Format(booking.DateLayout),
			Time:     c.Time,
			Duration: c.Duration,
		})
		if err != nil {
			s.logger.Warn("booking not stored, confirming with local code",
				"checkout_id", c.ID, "field_id", c.Field.ID, "error", err)
			conf.VerificationCode = s.ids.NewVerificationCode()
			conf.Degraded = true
			return c.Confirm(conf)
		}

		conf.BookingID = created.ID
		conf.VerificationCode = created.VerificationCode
		conf.TotalPrice = created.TotalPrice
		if err := s.recorder.Add(ctx, renterID, created); err != nil {
			s.logger.Warn("failed to record renter booking", "booking_id", created.ID, "error", err)
		}
		return c.Confirm(conf)
	})
}

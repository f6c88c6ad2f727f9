package booking

import (
	"fieldbook/internal/domain/listing"
	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/pkg/idgen"
)

const UnknownFieldName = "Field"

type Request struct {
	FieldID  string
	UserID   string
	Date     string
	Time     string
	Duration int
}

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	IDs             idgen.Generator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator, ids idgen.Generator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
		IDs:             ids,
	}
}

// CreateBooking builds a booking for l, which may be nil when the listing is
// unknown. No availability check is made.
func (f *Factory) CreateBooking(l *listing.Listing, req Request) (*Booking, error) {
	now := f.Clock.Now()
	date, err := ParseDate(req.Date, now.Location())
	if err != nil {
		return nil, err
	}
	if !IsTimeSlot(req.Time) {
		return nil, ErrInvalidTimeSlot
	}
	duration := ClampDuration(req.Duration)

	b := &Booking{
		ID:               f.IDs.NewID(),
		FieldID:          req.FieldID,
		FieldName:        UnknownFieldName,
		UserID:           req.UserID,
		Date:             date,
		Time:             req.Time,
		Duration:         duration,
		TotalPrice:       f.PriceCalculator.CalculatePrice(l, duration),
		VerificationCode: f.IDs.NewVerificationCode(),
		Status:           ClassifyStatus(date, clock.StartOfDay(now)),
		CreatedAt:        now,
	}
	if l != nil {
		b.FieldName = l.Name
		b.Location = l.Location
		b.Image = l.Image
		if b.Image == "" && len(l.Images) > 0 {
			b.Image = l.Images[0]
		}
	}
	return b, nil
}

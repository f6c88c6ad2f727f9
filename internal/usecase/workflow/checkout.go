// Package workflow drives a renter through picking a slot, paying and
// receiving a verification code.
package workflow

import (
	"errors"
	"time"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/domain/listing"
	"fieldbook/internal/domain/payment"
)

var (
	ErrInvalidTransition = errors.New("action not allowed in current checkout state")
	ErrDetailsIncomplete = errors.New("date and time must be selected")
	ErrDateInPast        = errors.New("date is before today")
)

type State string

const (
	StateSelectingDetails State = "selecting_details"
	StateAwaitingPayment  State = "awaiting_payment"
	StateConfirmed        State = "confirmed"
)

// Confirmation is what the renter sees after paying. Degraded means the
// booking could not be stored and the code was issued locally.
type Confirmation struct {
	BookingID        string         `json:"bookingId,omitempty"`
	FieldID          string         `json:"fieldId"`
	FieldName        string         `json:"fieldName"`
	Location         string         `json:"location"`
	Date             time.Time      `json:"date"`
	Time             string         `json:"time"`
	Duration         int            `json:"duration"`
	TotalPrice       int64          `json:"totalPrice"`
	VerificationCode string         `json:"verificationCode"`
	PaymentMethod    payment.Method `json:"paymentMethod"`
	Degraded         bool           `json:"degraded"`
}

type Checkout struct {
	ID           string          `json:"id"`
	RenterID     string          `json:"renterId"`
	Field        listing.Listing `json:"field"`
	State        State           `json:"state"`
	Date         time.Time       `json:"date,omitzero"`
	Time         string          `json:"time,omitempty"`
	Duration     int             `json:"duration"`
	TotalPrice   int64           `json:"totalPrice"`
	Confirmation *Confirmation   `json:"confirmation,omitempty"`
}

func NewCheckout(id, renterID string, field listing.Listing) *Checkout {
	c := &Checkout{ID: id, RenterID: renterID, Field: field}
	c.Close()
	return c
}

func (c *Checkout) SelectDate(date, today time.Time) error {
	if c.State != StateSelectingDetails {
		return ErrInvalidTransition
	}
	if date.Before(today) {
		return ErrDateInPast
	}
	c.Date = date
	return nil
}

func (c *Checkout) SelectTime(slot string) error {
	if c.State != StateSelectingDetails {
		return ErrInvalidTransition
	}
	if !booking.IsTimeSlot(slot) {
		return booking.ErrInvalidTimeSlot
	}
	c.Time = slot
	return nil
}

func (c *Checkout) SelectDuration(d int) error {
	if c.State != StateSelectingDetails {
		return ErrInvalidTransition
	}
	c.Duration = booking.ClampDuration(d)
	c.TotalPrice = c.Field.PricePerHour * int64(c.Duration)
	return nil
}

func (c *Checkout) Continue() error {
	if c.State != StateSelectingDetails {
		return ErrInvalidTransition
	}
	if c.Date.IsZero() || c.Time == "" {
		return ErrDetailsIncomplete
	}
	c.State = StateAwaitingPayment
	return nil
}

func (c *Checkout) CancelPayment() error {
	if c.State != StateAwaitingPayment {
		return ErrInvalidTransition
	}
	c.State = StateSelectingDetails
	return nil
}

func (c *Checkout) Confirm(conf Confirmation) error {
	if c.State != StateAwaitingPayment {
		return ErrInvalidTransition
	}
	c.Confirmation = &conf
	c.State = StateConfirmed
	return nil
}

// Close returns the checkout to an empty selection from any state.
func (c *Checkout) Close() {
	c.State = StateSelectingDetails
	c.Date = time.Time{}
	c.Time = ""
	c.Duration = booking.DefaultDuration
	c.TotalPrice = c.Field.PricePerHour * int64(c.Duration)
	c.Confirmation = nil
}

//go:build unit || e2e

package builder

import (
	"time"

	"fieldbook/internal/domain/booking"
)

type BookingBuilder struct {
	ID               string
	FieldID          string
	FieldName        string
	UserID           string
	Date             time.Time
	Time             string
	Duration         int
	TotalPrice       int64
	VerificationCode string
	Status           booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:               "b1",
		FieldID:          "1",
		FieldName:        "Green Arena",
		UserID:           "u1",
		Date:             time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
		Time:             "18:00",
		Duration:         2,
		TotalPrice:       200000,
		VerificationCode: "123456",
		Status:           booking.StatusUpcoming,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() booking.Booking {
	return booking.Booking{
		ID:               b.ID,
		FieldID:          b.FieldID,
		FieldName:        b.FieldName,
		Location:         "Chilonzor, Tashkent",
		UserID:           b.UserID,
		Date:             b.Date,
		Time:             b.Time,
		Duration:         b.Duration,
		TotalPrice:       b.TotalPrice,
		VerificationCode: b.VerificationCode,
		Status:           b.Status,
		IsVerified:       b.Status == booking.StatusVerified,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id string) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) ForUser(userID string) *BookingBuilder {
	b.UserID = userID
	return b
}

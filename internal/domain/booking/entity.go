package booking

import (
	"time"
)

type Booking struct {
	ID               string    `json:"id"`
	FieldID          string    `json:"fieldId"`
	FieldName        string    `json:"fieldName"`
	Location         string    `json:"location"`
	Image            string    `json:"image,omitempty"`
	UserID           string    `json:"userId"`
	UserName         string    `json:"userName,omitempty"`
	UserPhone        string    `json:"userPhone,omitempty"`
	Date             time.Time `json:"date"`
	Time             string    `json:"time"`
	Duration         int       `json:"duration"`
	TotalPrice       int64     `json:"totalPrice"`
	VerificationCode string    `json:"verificationCode"`
	Status           Status    `json:"status"`
	IsVerified       bool      `json:"isVerified"`
	CreatedAt        time.Time `json:"createdAt,omitzero"`
}

// ClassifyStatus decides the status of a new booking: a day before today is
// already completed, anything else is upcoming. It is never re-evaluated.
func ClassifyStatus(date, today time.Time) Status {
	if date.Before(today) {
		return StatusCompleted
	}
	return StatusUpcoming
}

// MarkVerified records a successful in-person check.
func (b *Booking) MarkVerified() {
	b.IsVerified = true
	b.Status = StatusVerified
}

func (b *Booking) MatchesCode(code string) bool {
	return b.VerificationCode == code
}

package response

import (
	"fieldbook/internal/domain/booking"
	"fieldbook/internal/usecase/workflow"
)

type CheckoutResponse struct {
	workflow.Checkout
	TimeSlots []string `json:"timeSlots"`
	Durations []int    `json:"durations"`
}

func FromCheckout(c workflow.Checkout) CheckoutResponse {
	return CheckoutResponse{
		Checkout:  c,
		TimeSlots: booking.TimeSlots(),
		Durations: booking.Durations(),
	}
}

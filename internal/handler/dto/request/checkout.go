package request

import (
	"fieldbook/internal/domain/payment"
	"fieldbook/internal/usecase/workflow"
)

type StartCheckoutRequest struct {
	FieldID string `json:"fieldId" binding:"required"`
}

type UpdateCheckoutRequest struct {
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Duration *int    `json:"duration"`
}

func (r *UpdateCheckoutRequest) ToUpdate() workflow.DetailsUpdate {
	return workflow.DetailsUpdate{Date: r.Date, Time: r.Time, Duration: r.Duration}
}

type PayRequest struct {
	Method     string `json:"method" binding:"omitempty,oneof=click payme card"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

func (r *PayRequest) ToDetails() payment.Details {
	return payment.Details{
		Method:     payment.Method(r.Method),
		CardNumber: r.CardNumber,
		Expiry:     r.Expiry,
		CVV:        r.CVV,
	}.WithDefaults()
}

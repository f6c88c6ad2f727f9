package payment

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrUnsupportedMethod = errors.New("unsupported payment method")
	ErrMissingCardData   = errors.New("card number, expiry and cvv are required")
)

type Method string

const (
	MethodClick Method = "click"
	MethodPayme Method = "payme"
	MethodCard  Method = "card"

	DefaultMethod = MethodClick
)

// Details is what the renter enters in the payment dialog. Card fields are
// only checked for presence.
type Details struct {
	Method     Method `json:"method"`
	CardNumber string `json:"cardNumber,omitempty"`
	Expiry     string `json:"expiry,omitempty"`
	CVV        string `json:"cvv,omitempty"`
}

func (d Details) Validate() error {
	switch d.Method {
	case MethodClick, MethodPayme:
		return nil
	case MethodCard:
		if strings.TrimSpace(d.CardNumber) == "" || strings.TrimSpace(d.Expiry) == "" || strings.TrimSpace(d.CVV) == "" {
			return ErrMissingCardData
		}
		return nil
	default:
		return ErrUnsupportedMethod
	}
}

func (d Details) WithDefaults() Details {
	if d.Method == "" {
		d.Method = DefaultMethod
	}
	return d
}

type Receipt struct {
	Method Method    `json:"method"`
	Amount int64     `json:"amount"`
	PaidAt time.Time `json:"paidAt"`
}

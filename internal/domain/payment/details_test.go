//go:build unit

package payment_test

import (
	"testing"

	"fieldbook/internal/domain/payment"

	"github.com/stretchr/testify/assert"
)

func TestDetailsValidate(t *testing.T) {
	cases := []struct {
		name    string
		details payment.Details
		errIs   error
	}{
		{name: "click", details: payment.Details{Method: payment.MethodClick}},
		{name: "payme", details: payment.Details{Method: payment.MethodPayme}},
		{name: "card complete", details: payment.Details{Method: payment.MethodCard, CardNumber: "8600 1234", Expiry: "12/28", CVV: "123"}},
		{name: "card without cvv", details: payment.Details{Method: payment.MethodCard, CardNumber: "8600 1234", Expiry: "12/28"}, errIs: payment.ErrMissingCardData},
		{name: "unknown method", details: payment.Details{Method: "cash"}, errIs: payment.ErrUnsupportedMethod},
		{name: "empty method defaults to click", details: payment.Details{}.WithDefaults()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.details.Validate()
			if c.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

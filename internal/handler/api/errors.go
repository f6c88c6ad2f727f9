package api

import (
	"context"
	"errors"
	"net/http"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/domain/listing"
	"fieldbook/internal/domain/payment"
	"fieldbook/internal/domain/preference"
	"fieldbook/internal/domain/promotion"
	"fieldbook/internal/domain/user"
	"fieldbook/internal/handler/httperr"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/pkg/simnet"
	"fieldbook/internal/usecase/shared"
	"fieldbook/internal/usecase/workflow"

	"github.com/gin-gonic/gin"
)

var badRequestErrors = []error{
	errs.ErrInvalidCodeFormat,
	errs.ErrPaymentDetailsEmpty,
	booking.ErrInvalidTimeSlot,
	booking.ErrInvalidDate,
	booking.ErrInvalidStatus,
	listing.ErrInvalidPriceBucket,
	listing.ErrInvalidSortKey,
	listing.ErrInvalidPromotionLevel,
	promotion.ErrUnknownPackage,
	payment.ErrMissingCardData,
	payment.ErrUnsupportedMethod,
	preference.ErrUnsupportedLanguage,
	preference.ErrUnsupportedTheme,
	shared.ErrInvalidBookingSort,
	workflow.ErrDetailsIncomplete,
	workflow.ErrDateInPast,
	user.ErrInvalidPhone,
	user.ErrInvalidSMSCode,
}

// abortWithUseCaseError maps usecase and domain errors onto HTTP statuses.
func abortWithUseCaseError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errs.Is(err, errs.ErrListingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Field not found", nil)
	case errs.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, errs.ErrCheckoutNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Checkout not found", nil)
	case errs.Is(err, errs.ErrCheckoutForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	case errs.Is(err, errs.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Session expired", nil)
	case errs.Is(err, errs.ErrVerificationLocked):
		httperr.AbortWithError(c, http.StatusLocked, err, "Too many attempts", gin.H{"attemptsLeft": 0})
	case errs.Is(err, workflow.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case isBadRequest(err):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	case errs.Is(err, simnet.ErrSimulatedFailure), errs.Is(err, errs.ErrBackendUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Request cancelled", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallbackMsg, nil)
	}
}

func isBadRequest(err error) bool {
	for _, target := range badRequestErrors {
		if errs.Is(err, target) {
			return true
		}
	}
	return false
}

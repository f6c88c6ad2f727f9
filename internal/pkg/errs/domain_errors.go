package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Listing errors
	ErrListingNotFound = errors.New("listing not found")

	// Booking errors
	ErrBookingNotFound     = errors.New("booking not found")
	ErrVerificationLocked  = errors.New("verification attempts exhausted")
	ErrInvalidCodeFormat   = errors.New("verification code must be 6 digits")
	ErrCheckoutNotFound    = errors.New("checkout not found")
	ErrCheckoutForbidden   = errors.New("checkout belongs to another renter")
	ErrPaymentDetailsEmpty = errors.New("payment details are incomplete")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Backend errors
	ErrBackendUnavailable = errors.New("booking backend unavailable")
)

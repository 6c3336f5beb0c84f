package domain

import "errors"

var (
	// ErrBookingNotFound is returned when a cancel names an id that is not
	// in the store.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrPaymentTimeout is returned when the simulated payment round trip
	// does not answer within the configured bound.
	ErrPaymentTimeout = errors.New("payment processing timed out")

	// ErrSubmitInFlight is returned by the wizard when a submit is attempted
	// while another one has not resolved yet.
	ErrSubmitInFlight = errors.New("a submission is already in flight")
)

// ValidationError rejects a booking submission before any record is created.
// Reason is safe to show to the customer.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is a submission validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

package audit

import (
	"errors"
	"fmt"
)

// InvalidEnumError reports a value outside its enumeration. Rejected
// synchronously, never retried.
type InvalidEnumError struct {
	Field string
	Value string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Field)
}

// MissingFieldError reports an absent required field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %s", e.Field)
}

// ErrEventNotFound ...
var ErrEventNotFound = errors.New("audit: event not found")

// ErrNotAnchored is returned when verification is requested for an
// event that was never anchored.
var ErrNotAnchored = errors.New("audit: event not anchored")

// ErrAnchoringUnavailable wraps transient ledger failures surfaced to
// operators.
var ErrAnchoringUnavailable = errors.New("audit: anchoring unavailable")

// IsValidationError reports whether err is a synchronous input error
// rather than an infrastructure failure.
func IsValidationError(err error) bool {
	var invalidEnum *InvalidEnumError
	var missing *MissingFieldError
	return errors.As(err, &invalidEnum) || errors.As(err, &missing)
}

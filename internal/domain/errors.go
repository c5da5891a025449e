package domain

import (
	"errors"
	"fmt"
)

// Rejection kinds. Every rejection returned by the engine wraps exactly one of them.
var (
	ErrFormat            = errors.New("domain: malformed field")
	ErrDuration          = errors.New("domain: duration not allowed")
	ErrOutOfHours        = errors.New("domain: outside business hours")
	ErrBlackout          = errors.New("domain: blackout window")
	ErrPastDate          = errors.New("domain: date in the past")
	ErrConflict          = errors.New("domain: slot already booked")
	ErrForbidden         = errors.New("domain: not allowed to delete booking")
	ErrInvalidCredential = errors.New("domain: invalid credential")
	ErrAlreadyPassed     = errors.New("domain: booking already passed")
)

// ErrStoreUnavailable marks infrastructure failures behind the booking store
var ErrStoreUnavailable = errors.New("domain: booking store unavailable")

// ErrInvalidRules is returned when a booking policy cannot be evaluated
var ErrInvalidRules = errors.New("domain: invalid booking rules")

// RejectionError carries the rejection kind plus a human readable reason.
// Reasons are plain English; localized text belongs to the transport layer.
type RejectionError struct {
	Kind   error
	Field  string
	Reason string

	// Window is the label of the blackout window hit, for ErrBlackout
	Window string
	// Conflict is the booking occupying the slot, for ErrConflict
	Conflict *Booking
}

func (e *RejectionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%v: %s: %s", e.Kind, e.Field, e.Reason)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Reason)
}

func (e *RejectionError) Unwrap() error {
	return e.Kind
}

func reject(kind error, field, reason string) *RejectionError {
	return &RejectionError{Kind: kind, Field: field, Reason: reason}
}

// AsRejection extracts a RejectionError from err
func AsRejection(err error) (*RejectionError, bool) {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection, true
	}
	return nil, false
}

// RejectionKind returns a short stable name of the rejection kind, used as a metrics label
func RejectionKind(err error) string {
	switch {
	case errors.Is(err, ErrFormat):
		return "format"
	case errors.Is(err, ErrDuration):
		return "duration"
	case errors.Is(err, ErrOutOfHours):
		return "out_of_hours"
	case errors.Is(err, ErrBlackout):
		return "blackout"
	case errors.Is(err, ErrPastDate):
		return "past_date"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrInvalidCredential):
		return "invalid_credential"
	case errors.Is(err, ErrAlreadyPassed):
		return "already_passed"
	default:
		return "error"
	}
}

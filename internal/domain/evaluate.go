package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/RoomBookingService/pkg/types"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// CredentialVerifier reports whether secret matches the owning association's stored credential
type CredentialVerifier func(secret string) bool

// EvaluateBooking decides whether req may become a booking.
// existing holds the bookings already stored for req's date and room; today is the
// caller's current date. On acceptance the returned Booking is ready to insert.
// Every rejection is a *RejectionError.
func (r BookingRules) EvaluateBooking(req BookingRequest, existing []*Booking, today time.Time) (*Booking, error) {
	// 1. Structure. A disallowed duration is reported before any other field error.
	if err := r.ValidateDuration(req.DurationMinutes); err != nil {
		return nil, err
	}

	if err := checkRequiredFields(req); err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date, today.Location())
	if err != nil {
		return nil, err
	}

	start, err := types.ToMinutes(req.StartTime)
	if err != nil {
		return nil, reject(ErrFormat, "startTime", "invalid time format, expected HH:MM")
	}

	firstName := strings.TrimSpace(req.BookerFirstName)
	if utf8.RuneCountInString(firstName) < MinBookerNameLength {
		return nil, reject(ErrFormat, "bookerFirstName",
			fmt.Sprintf("first name must be at least %d characters", MinBookerNameLength))
	}

	lastName := strings.TrimSpace(req.BookerLastName)
	if utf8.RuneCountInString(lastName) < MinBookerNameLength {
		return nil, reject(ErrFormat, "bookerLastName",
			fmt.Sprintf("last name must be at least %d characters", MinBookerNameLength))
	}

	// 2. Date: same day is always allowed
	if isDateInPast(date, today) {
		return nil, reject(ErrPastDate, "date", "cannot book dates in the past")
	}

	// 3. Business hours
	if err := r.ValidateBusinessHours(start, req.DurationMinutes); err != nil {
		return nil, err
	}

	// 4. Blackout windows
	if err := r.ValidateBlackout(start, req.DurationMinutes); err != nil {
		return nil, err
	}

	// 5. Existing bookings
	end := start + req.DurationMinutes
	if conflict := FindConflict(start, end, existing); conflict != nil {
		// FindConflict only returns bookings with a readable interval
		cStart, cEnd, _ := conflict.Interval()
		rejection := reject(ErrConflict, "startTime",
			fmt.Sprintf("time slot conflicts with existing booking from %s to %s",
				types.ToText(cStart), types.ToText(cEnd)))
		rejection.Conflict = conflict
		return nil, rejection
	}

	// 6. Accepted
	endTime, err := types.FromMinutes(end)
	if err != nil {
		// Unreachable while the business window ends before midnight
		return nil, reject(ErrOutOfHours, "startTime", "booking must end before midnight")
	}

	return &Booking{
		BookingDate:     date,
		RoomID:          req.RoomID,
		StartTime:       types.TimeString(req.StartTime),
		EndTime:         endTime,
		DurationMinutes: req.DurationMinutes,
		BookerFirstName: firstName,
		BookerLastName:  lastName,
		AssociationID:   req.AssociationID,
	}, nil
}

// EvaluateDeletion decides whether requester may delete b at instant now.
// Checks run in a fixed order so a non-owner never learns whether a credential would verify:
// ownership, then credential, then whether the booking already started.
func EvaluateDeletion(b *Booking, requester Requester, verify CredentialVerifier, now time.Time) error {
	if !requester.IsAdmin() && !requester.Owns(b) {
		return reject(ErrForbidden, "", "only the owning association or an admin may delete this booking")
	}

	if verify == nil || !verify(requester.Credential) {
		return reject(ErrInvalidCredential, "password", "credential does not match the owning association")
	}

	startsAt, err := b.StartsAt(now.Location())
	if err != nil {
		return fmt.Errorf("%w: booking %d has invalid start time: %v", ErrInvalidRules, b.ID, err)
	}
	if startsAt.Before(now) {
		return reject(ErrAlreadyPassed, "", "cannot delete a booking that has already passed")
	}

	return nil
}

func checkRequiredFields(req BookingRequest) error {
	missing := ""
	switch {
	case req.Date == "":
		missing = "date"
	case req.RoomID <= 0:
		missing = "roomId"
	case req.StartTime == "":
		missing = "startTime"
	case req.BookerFirstName == "":
		missing = "bookerFirstName"
	case req.BookerLastName == "":
		missing = "bookerLastName"
	case req.AssociationID <= 0:
		missing = "associationId"
	default:
		return nil
	}
	return reject(ErrFormat, missing, "missing required field")
}

func parseDate(text string, loc *time.Location) (time.Time, error) {
	if !datePattern.MatchString(text) {
		return time.Time{}, reject(ErrFormat, "date", "invalid date format, expected YYYY-MM-DD")
	}

	date, err := time.ParseInLocation(DateFormat, text, loc)
	if err != nil {
		return time.Time{}, reject(ErrFormat, "date", "invalid calendar date")
	}

	return date, nil
}

// isDateInPast compares calendar days only
func isDateInPast(date, today time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, today.Location())
	todayOnly := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return dateOnly.Before(todayOnly)
}

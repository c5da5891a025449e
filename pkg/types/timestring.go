package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// MinutesPerDay is the exclusive upper bound of a time of day in minutes.
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat is returned when a value is not a zero-padded "HH:MM" time.
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrOutOfDay is returned when arithmetic leaves the [00:00, 24:00) range.
	ErrOutOfDay = errors.New("time is outside of a single day")
)

var timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// TimeString is a time of day in "HH:MM" form.
// Lexical order of valid values equals chronological order.
type TimeString string

// ToMinutes parses "HH:MM" into minutes since midnight.
func ToMinutes(text string) (int, error) {
	if !timePattern.MatchString(text) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}

	hours, _ := strconv.Atoi(text[:2])
	minutes, _ := strconv.Atoi(text[3:])
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}

	return hours*60 + minutes, nil
}

// ToText formats minutes since midnight as "HH:MM".
func ToText(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// RangesOverlap reports whether [startA, endA) and [startB, endB) intersect.
// Abutting ranges do not overlap.
func RangesOverlap(startA, endA, startB, endB int) bool {
	return startA < endB && endA > startB
}

// NewTimeStringFromString validates s and returns it as a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := ToMinutes(s); err != nil {
		return "", err
	}
	return TimeString(s), nil
}

// NewTimeString takes the hour and minute of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// FromMinutes converts minutes since midnight, rejecting values outside one day.
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrOutOfDay, minutes)
	}
	return TimeString(ToText(minutes)), nil
}

// Minutes returns the number of minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	return ToMinutes(string(t))
}

// AddMinutes shifts t by d minutes. The result must stay within the same day.
func (t TimeString) AddMinutes(d int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(m + d)
}

// IsZero reports whether t is unset.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the "HH:MM" grammar and ranges.
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

func (t TimeString) String() string {
	return string(t)
}

// Scan reads a Postgres TIME column ("HH:MM:SS") or a time.Time.
func (t *TimeString) Scan(src interface{}) error {
	var raw string

	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeFormat, src)
	}

	if len(raw) < 5 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
	}

	parsed, err := NewTimeStringFromString(raw[:5])
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value stores t as "HH:MM", which Postgres accepts for TIME columns.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

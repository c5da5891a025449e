package domain

import (
	"fmt"
	"sort"

	"github.com/m04kA/RoomBookingService/pkg/types"
)

// TimeWindow is a half-open interval [Start, End) within one day
type TimeWindow struct {
	Start types.TimeString
	End   types.TimeString
	Label string
}

// Bounds returns the window in minutes since midnight
func (w TimeWindow) Bounds() (int, int, error) {
	start, err := w.Start.Minutes()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: window %q start: %v", ErrInvalidRules, w.Label, err)
	}
	end, err := w.End.Minutes()
	if err != nil {
		// 24:00 is not a valid time of day but is a valid window end
		if w.End != "24:00" {
			return 0, 0, fmt.Errorf("%w: window %q end: %v", ErrInvalidRules, w.Label, err)
		}
		end = types.MinutesPerDay
	}
	if start >= end {
		return 0, 0, fmt.Errorf("%w: window %q is empty", ErrInvalidRules, w.Label)
	}
	return start, end, nil
}

// BookingRules is the booking policy expressed as data
type BookingRules struct {
	AllowedDurations []int
	BusinessWindow   TimeWindow
	BlackoutWindows  []TimeWindow
}

// DefaultBookingRules returns the policy used when nothing is configured:
// 60 minute bookings between 08:00 and 22:00, morning and lunch hours blocked.
func DefaultBookingRules() BookingRules {
	return BookingRules{
		AllowedDurations: []int{DefaultDurationMinutes},
		BusinessWindow: TimeWindow{
			Start: DefaultBusinessStart,
			End:   DefaultBusinessEnd,
			Label: DefaultBusinessStart + "-" + DefaultBusinessEnd,
		},
		BlackoutWindows: []TimeWindow{
			{Start: "09:00", End: "10:00", Label: "09:00-10:00"},
			{Start: "12:00", End: "13:00", Label: "12:00-13:00"},
		},
	}
}

// Validate checks that the policy is self-consistent
func (r BookingRules) Validate() error {
	if len(r.AllowedDurations) == 0 {
		return fmt.Errorf("%w: no allowed durations", ErrInvalidRules)
	}
	for _, d := range r.AllowedDurations {
		if d <= 0 || d >= types.MinutesPerDay {
			return fmt.Errorf("%w: duration %d out of range", ErrInvalidRules, d)
		}
	}

	if _, _, err := r.BusinessWindow.Bounds(); err != nil {
		return err
	}
	for _, w := range r.BlackoutWindows {
		if _, _, err := w.Bounds(); err != nil {
			return err
		}
	}

	return nil
}

// ValidateDuration rejects durations outside AllowedDurations
func (r BookingRules) ValidateDuration(duration int) error {
	for _, d := range r.AllowedDurations {
		if d == duration {
			return nil
		}
	}
	return reject(ErrDuration, "duration",
		fmt.Sprintf("duration must be one of %v minutes, got %d", r.AllowedDurations, duration))
}

// ValidateBusinessHours requires start >= window start and start+duration <= window end
func (r BookingRules) ValidateBusinessHours(start, duration int) error {
	windowStart, windowEnd, err := r.BusinessWindow.Bounds()
	if err != nil {
		return err
	}

	if start < windowStart {
		return reject(ErrOutOfHours, "startTime",
			fmt.Sprintf("bookings cannot start before %s", r.BusinessWindow.Start))
	}
	if start+duration > windowEnd {
		return reject(ErrOutOfHours, "startTime",
			fmt.Sprintf("bookings must end by %s", r.BusinessWindow.End))
	}

	return nil
}

// ValidateBlackout rejects slots overlapping any blackout window, reporting the first one hit
func (r BookingRules) ValidateBlackout(start, duration int) error {
	end := start + duration

	for _, w := range r.BlackoutWindows {
		wStart, wEnd, err := w.Bounds()
		if err != nil {
			return err
		}
		if types.RangesOverlap(start, end, wStart, wEnd) {
			rejection := reject(ErrBlackout, "startTime",
				fmt.Sprintf("time slot %s is not available for booking", w.Label))
			rejection.Window = w.Label
			return rejection
		}
	}

	return nil
}

// SlotStep returns the shortest allowed duration, used to lay out candidate slots
func (r BookingRules) SlotStep() int {
	durations := append([]int(nil), r.AllowedDurations...)
	sort.Ints(durations)
	if len(durations) == 0 || durations[0] <= 0 {
		return DefaultDurationMinutes
	}
	return durations[0]
}

// CandidateSlots lists every bookable slot of one room and day, ignoring existing bookings.
// Slots start at the business window start and step by SlotStep.
func (r BookingRules) CandidateSlots() ([]TimeWindow, error) {
	windowStart, windowEnd, err := r.BusinessWindow.Bounds()
	if err != nil {
		return nil, err
	}

	step := r.SlotStep()
	slots := make([]TimeWindow, 0, (windowEnd-windowStart)/step)

	for start := windowStart; start+step <= windowEnd; start += step {
		if err := r.ValidateBlackout(start, step); err != nil {
			if _, ok := AsRejection(err); ok {
				continue
			}
			return nil, err
		}

		startText, endText := types.ToText(start), types.ToText(start+step)
		slots = append(slots, TimeWindow{
			Start: types.TimeString(startText),
			End:   types.TimeString(endText),
			Label: startText + "-" + endText,
		})
	}

	return slots, nil
}

package domain

import "github.com/m04kA/RoomBookingService/pkg/types"

// FindConflict returns the first booking in existing whose interval overlaps [start, end),
// or nil. existing must already be narrowed to one date and room.
// Bookings with unreadable times are skipped. Stored bookings never have them:
// start_time and end_time are NOT NULL TIME columns and TimeString.Scan rejects
// anything that is not a valid time of day, so the repository fails the whole read instead.
func FindConflict(start, end int, existing []*Booking) *Booking {
	for _, b := range existing {
		if b == nil {
			continue
		}

		bStart, bEnd, err := b.Interval()
		if err != nil {
			continue
		}

		// Strict inequalities: abutting bookings are allowed
		if types.RangesOverlap(start, end, bStart, bEnd) {
			return b
		}
	}

	return nil
}

package domain

import "time"

// SlotAvailability is one candidate slot of a room on a given day
type SlotAvailability struct {
	Window    TimeWindow
	Available bool
	// BookedBy is the booking occupying the slot, if any
	BookedBy *Booking
}

// RoomAvailability is the exact availability of one room on one day
type RoomAvailability struct {
	Room      Room
	Date      time.Time
	Slots     []SlotAvailability
	Remaining int
	Total     int
}

// IsFullyBooked returns true when no bookable slot is left
func (a *RoomAvailability) IsFullyBooked() bool {
	return a.Remaining == 0
}

// Availability computes the remaining bookable slots of room on date.
// bookings must be narrowed to that room and date. Days before today have no bookable slots.
func (r BookingRules) Availability(room Room, date, today time.Time, bookings []*Booking) (*RoomAvailability, error) {
	candidates, err := r.CandidateSlots()
	if err != nil {
		return nil, err
	}

	past := isDateInPast(date, today)
	result := &RoomAvailability{
		Room:  room,
		Date:  date,
		Slots: make([]SlotAvailability, 0, len(candidates)),
		Total: len(candidates),
	}

	for _, slot := range candidates {
		// Bounds were already validated by CandidateSlots
		start, end, _ := slot.Bounds()

		occupant := FindConflict(start, end, bookings)
		available := occupant == nil && !past
		if available {
			result.Remaining++
		}

		result.Slots = append(result.Slots, SlotAvailability{
			Window:    slot,
			Available: available,
			BookedBy:  occupant,
		})
	}

	return result, nil
}

package domain

import (
	"time"

	"github.com/m04kA/RoomBookingService/pkg/types"
)

// Room is a bookable meeting room
type Room struct {
	ID   int64
	Name string
}

// BookingRequest is an inbound, not yet validated booking.
// Date and StartTime are kept as raw text so grammar errors surface as rejections.
type BookingRequest struct {
	Date            string // "2025-11-15"
	RoomID          int64
	StartTime       string // "14:00"
	DurationMinutes int
	BookerFirstName string
	BookerLastName  string
	AssociationID   int64
}

// Booking represents an accepted room booking.
// Bookings are never edited; cancel and rebook is the only update path.
type Booking struct {
	ID              int64
	BookingDate     time.Time
	RoomID          int64
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	BookerFirstName string
	BookerLastName  string
	AssociationID   int64
	CreatedAt       time.Time

	// Denormalized data for listings
	RoomName        string
	AssociationName string
}

// Interval returns the booking as [start, end) minutes since midnight
func (b *Booking) Interval() (int, int, error) {
	start, err := b.StartTime.Minutes()
	if err != nil {
		return 0, 0, err
	}

	if !b.EndTime.IsZero() {
		end, err := b.EndTime.Minutes()
		if err != nil {
			return 0, 0, err
		}
		return start, end, nil
	}

	return start, start + b.DurationMinutes, nil
}

// StartsAt returns the booking start as an instant in loc
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	start, err := b.StartTime.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := b.BookingDate.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(time.Duration(start) * time.Minute), nil
}

// CalendarFilter selects bookings for the calendar view
type CalendarFilter struct {
	FromDate time.Time // inclusive
	ToDate   time.Time // inclusive
	RoomID   *int64
}

// HistoryFilter selects a page of booking history, newest first
type HistoryFilter struct {
	AssociationID *int64
	FromDate      *time.Time
	ToDate        *time.Time
	Limit         int
	Offset        int
}

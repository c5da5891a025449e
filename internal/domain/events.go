package domain

import "time"

// Routing keys of booking events
const (
	EventBookingCreated = "booking.created"
	EventBookingDeleted = "booking.deleted"
)

// BookingEvent is published after a booking change is committed
type BookingEvent struct {
	BookingID       int64     `json:"bookingId"`
	Date            string    `json:"date"`
	RoomID          int64     `json:"roomId"`
	RoomName        string    `json:"roomName"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	AssociationID   int64     `json:"associationId"`
	AssociationName string    `json:"associationName,omitempty"`
	OccurredAt      time.Time `json:"occurredAt"`
}

// NewBookingEvent snapshots b at the moment of the change
func NewBookingEvent(b *Booking, at time.Time) BookingEvent {
	return BookingEvent{
		BookingID:       b.ID,
		Date:            b.BookingDate.Format(DateFormat),
		RoomID:          b.RoomID,
		RoomName:        b.RoomName,
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		AssociationID:   b.AssociationID,
		AssociationName: b.AssociationName,
		OccurredAt:      at,
	}
}

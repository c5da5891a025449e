package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRules_Availability(t *testing.T) {
	rules := DefaultBookingRules()
	room := Room{ID: 1, Name: "Wilmer 1"}
	date := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)

	t.Run("empty day", func(t *testing.T) {
		got, err := rules.Availability(room, date, testToday, nil)
		require.NoError(t, err)

		assert.Equal(t, 12, got.Total)
		assert.Equal(t, 12, got.Remaining)
		assert.False(t, got.IsFullyBooked())
		assert.Equal(t, room, got.Room)
	})

	t.Run("two bookings are not fully booked", func(t *testing.T) {
		bookings := []*Booking{
			existingBooking(1, "10:00", "11:00"),
			existingBooking(2, "14:00", "15:00"),
		}

		got, err := rules.Availability(room, date, testToday, bookings)
		require.NoError(t, err)

		assert.Equal(t, 10, got.Remaining)
		assert.False(t, got.IsFullyBooked())

		for _, slot := range got.Slots {
			switch slot.Window.Start {
			case "10:00":
				assert.False(t, slot.Available)
				assert.Same(t, bookings[0], slot.BookedBy)
			case "14:00":
				assert.False(t, slot.Available)
				assert.Same(t, bookings[1], slot.BookedBy)
			default:
				assert.True(t, slot.Available, slot.Window.Label)
				assert.Nil(t, slot.BookedBy)
			}
		}
	})

	t.Run("every slot booked", func(t *testing.T) {
		candidates, err := rules.CandidateSlots()
		require.NoError(t, err)

		bookings := make([]*Booking, 0, len(candidates))
		for i, c := range candidates {
			bookings = append(bookings, existingBooking(int64(i+1), c.Start.String(), c.End.String()))
		}

		got, err := rules.Availability(room, date, testToday, bookings)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Remaining)
		assert.True(t, got.IsFullyBooked())
	})

	t.Run("past day has nothing bookable", func(t *testing.T) {
		yesterday := time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC)

		got, err := rules.Availability(room, yesterday, testToday, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Remaining)
		assert.Equal(t, 12, got.Total)
	})
}

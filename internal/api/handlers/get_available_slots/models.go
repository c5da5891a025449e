package get_available_slots

import (
	"github.com/m04kA/RoomBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/RoomBookingService/internal/usecase/get_available_slots"
)

// AvailabilityResponse доступность комнат на дату
type AvailabilityResponse struct {
	Date  string          `json:"date"`
	Rooms []RoomAvailable `json:"rooms"`
}

// RoomAvailable слоты одной комнаты
type RoomAvailable struct {
	RoomID      int64          `json:"roomId"`
	RoomName    string         `json:"roomName"`
	Slots       []SlotResponse `json:"slots"`
	Remaining   int            `json:"remaining"`
	Total       int            `json:"total"`
	FullyBooked bool           `json:"fullyBooked"`
}

// SlotResponse временной слот
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
	BookingID *int64 `json:"bookingId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	rooms := make([]RoomAvailable, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		slots := make([]SlotResponse, 0, len(room.Slots))
		for _, slot := range room.Slots {
			slots = append(slots, SlotResponse{
				StartTime: slot.StartTime.String(),
				EndTime:   slot.EndTime.String(),
				Available: slot.Available,
				BookingID: slot.BookingID,
			})
		}

		rooms = append(rooms, RoomAvailable{
			RoomID:      room.RoomID,
			RoomName:    room.RoomName,
			Slots:       slots,
			Remaining:   room.Remaining,
			Total:       room.Total,
			FullyBooked: room.FullyBooked,
		})
	}

	return &AvailabilityResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Rooms: rooms,
	}
}

package get_available_slots

import (
	"time"

	"github.com/m04kA/RoomBookingService/pkg/types"
)

// Request модель запроса на получение доступности комнат
type Request struct {
	Date string // "2025-11-15"
}

// Response доступность всех комнат на дату
type Response struct {
	Date  time.Time
	Rooms []RoomSlots
}

// RoomSlots слоты одной комнаты
type RoomSlots struct {
	RoomID      int64
	RoomName    string
	Slots       []Slot
	Remaining   int
	Total       int
	FullyBooked bool
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
	BookingID *int64 // Бронирование, занимающее слот
}

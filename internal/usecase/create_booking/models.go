package create_booking

import (
	"time"

	"github.com/m04kA/RoomBookingService/internal/domain"
	"github.com/m04kA/RoomBookingService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Дата и время приходят строками: формат проверяет движок правил.
type Request struct {
	Requester       domain.Requester // Кто бронирует
	Date            string           // "2025-11-15"
	RoomID          int64            // ID комнаты
	StartTime       string           // "14:00"
	DurationMinutes int              // Длительность в минутах
	BookerFirstName string
	BookerLastName  string
	AssociationID   int64 // Учитывается только для администратора
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	BookingDate     time.Time
	RoomID          int64
	RoomName        string
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	BookerFirstName string
	BookerLastName  string
	AssociationID   int64
	CreatedAt       time.Time
}

func toResponse(b *domain.Booking, room *domain.Room) *Response {
	return &Response{
		ID:              b.ID,
		BookingDate:     b.BookingDate,
		RoomID:          b.RoomID,
		RoomName:        room.Name,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		DurationMinutes: b.DurationMinutes,
		BookerFirstName: b.BookerFirstName,
		BookerLastName:  b.BookerLastName,
		AssociationID:   b.AssociationID,
		CreatedAt:       b.CreatedAt,
	}
}

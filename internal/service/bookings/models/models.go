package models

import (
	"time"

	"github.com/m04kA/RoomBookingService/internal/domain"
)

// Request модели

// CalendarRequest запрос бронирований за месяц
type CalendarRequest struct {
	Month  string `json:"month"`            // "2025-11"
	RoomID *int64 `json:"roomId,omitempty"` // Фильтр по комнате (опционально)
}

// HistoryRequest запрос истории бронирований.
// Обычный пользователь видит только свою ассоциацию, AssociationID учитывается только для администратора.
type HistoryRequest struct {
	Role                   string  `json:"-"`
	RequesterAssociationID int64   `json:"-"`
	AssociationID          *int64  `json:"associationId,omitempty"`
	FromDate               *string `json:"fromDate,omitempty"` // "2025-11-01"
	ToDate                 *string `json:"toDate,omitempty"`
	Limit                  int     `json:"limit"`
	Offset                 int     `json:"offset"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64  `json:"id"`
	BookingDate     string `json:"bookingDate"` // "2025-11-15"
	RoomID          int64  `json:"roomId"`
	RoomName        string `json:"roomName"`
	StartTime       string `json:"startTime"` // "14:00"
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	BookerFirstName string `json:"bookerFirstName"`
	BookerLastName  string `json:"bookerLastName"`
	AssociationID   int64  `json:"associationId"`
	AssociationName string `json:"associationName"`
	CreatedAt       string `json:"createdAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// HistoryResponse страница истории бронирований
type HistoryResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
	HasMore  bool              `json:"hasMore"`
}

// RoomResponse комната
type RoomResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FromDomainBooking конвертирует доменное бронирование в ответ
func FromDomainBooking(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		RoomID:          b.RoomID,
		RoomName:        b.RoomName,
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		DurationMinutes: b.DurationMinutes,
		BookerFirstName: b.BookerFirstName,
		BookerLastName:  b.BookerLastName,
		AssociationID:   b.AssociationID,
		AssociationName: b.AssociationName,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}

// FromDomainRooms конвертирует список комнат
func FromDomainRooms(rooms []domain.Room) []RoomResponse {
	result := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, RoomResponse{ID: r.ID, Name: r.Name})
	}
	return result
}

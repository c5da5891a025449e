package create_booking

import (
	"time"

	"github.com/m04kA/RoomBookingService/internal/domain"
	createBooking "github.com/m04kA/RoomBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date            string `json:"date"`      // "2025-11-15"
	RoomID          int64  `json:"roomId"`    // 1 или 2
	StartTime       string `json:"startTime"` // "14:00"
	DurationMinutes int    `json:"duration"`
	BookerFirstName string `json:"bookerFirstName"`
	BookerLastName  string `json:"bookerLastName"`
	AssociationID   int64  `json:"associationId,omitempty"` // только для администратора
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64  `json:"id"`
	BookingDate     string `json:"bookingDate"`
	RoomID          int64  `json:"roomId"`
	RoomName        string `json:"roomName"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	BookerFirstName string `json:"bookerFirstName"`
	BookerLastName  string `json:"bookerLastName"`
	AssociationID   int64  `json:"associationId"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Формат даты и времени проверяет движок правил.
func (r *CreateBookingRequest) ToUseCaseRequest(requester domain.Requester) *createBooking.Request {
	return &createBooking.Request{
		Requester:       requester,
		Date:            r.Date,
		RoomID:          r.RoomID,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		BookerFirstName: r.BookerFirstName,
		BookerLastName:  r.BookerLastName,
		AssociationID:   r.AssociationID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		RoomID:          resp.RoomID,
		RoomName:        resp.RoomName,
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		BookerFirstName: resp.BookerFirstName,
		BookerLastName:  resp.BookerLastName,
		AssociationID:   resp.AssociationID,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}

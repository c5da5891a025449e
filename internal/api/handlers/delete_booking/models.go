package delete_booking

import (
	"github.com/m04kA/RoomBookingService/internal/domain"
	deleteBooking "github.com/m04kA/RoomBookingService/internal/usecase/delete_booking"
)

// DeleteBookingRequest пароль ассоциации-владельца
type DeleteBookingRequest struct {
	Password string `json:"password"`
}

// DeletedBooking краткие данные удаленного бронирования
type DeletedBooking struct {
	ID              int64  `json:"id"`
	BookingDate     string `json:"bookingDate"`
	RoomID          int64  `json:"roomId"`
	RoomName        string `json:"roomName"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	AssociationID   int64  `json:"associationId"`
	AssociationName string `json:"associationName"`
}

// DeleteBookingResponse HTTP response model
type DeleteBookingResponse struct {
	Message string         `json:"message"`
	Booking DeletedBooking `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *DeleteBookingRequest) ToUseCaseRequest(bookingID int64, requester domain.Requester) *deleteBooking.Request {
	return &deleteBooking.Request{
		BookingID: bookingID,
		Requester: deleteBooking.Requester{
			Role:          string(requester.Role),
			AssociationID: requester.AssociationID,
			Password:      r.Password,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *deleteBooking.Response) *DeleteBookingResponse {
	return &DeleteBookingResponse{
		Message: msgDeleted,
		Booking: DeletedBooking{
			ID:              resp.ID,
			BookingDate:     resp.BookingDate.Format(domain.DateFormat),
			RoomID:          resp.RoomID,
			RoomName:        resp.RoomName,
			StartTime:       resp.StartTime.String(),
			EndTime:         resp.EndTime.String(),
			AssociationID:   resp.AssociationID,
			AssociationName: resp.AssociationName,
		},
	}
}

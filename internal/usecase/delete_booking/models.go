package delete_booking

import (
	"time"

	"github.com/m04kA/RoomBookingService/pkg/types"
)

// Request модель запроса на удаление бронирования.
// Requester.Password содержит введенный пароль (код ассоциации-владельца).
type Request struct {
	BookingID int64
	Requester Requester
}

// Requester кто удаляет бронирование
type Requester struct {
	Role          string
	AssociationID int64
	Password      string
}

// Response краткая информация об удаленном бронировании
type Response struct {
	ID              int64
	BookingDate     time.Time
	RoomID          int64
	RoomName        string
	StartTime       types.TimeString
	EndTime         types.TimeString
	AssociationID   int64
	AssociationName string
}

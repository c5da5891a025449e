package get_rooms

import (
	"context"

	"github.com/m04kA/RoomBookingService/internal/service/bookings/models"
)

type RoomService interface {
	ListRooms(ctx context.Context) ([]models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

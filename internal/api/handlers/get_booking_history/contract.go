package get_booking_history

import (
	"context"

	"github.com/m04kA/RoomBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetHistory(ctx context.Context, req *models.HistoryRequest) (*models.HistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

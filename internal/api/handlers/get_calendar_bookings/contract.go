package get_calendar_bookings

import (
	"context"

	"github.com/m04kA/RoomBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetCalendar(ctx context.Context, req *models.CalendarRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

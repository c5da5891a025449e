package bookings

import (
	"context"

	"github.com/m04kA/RoomBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListForCalendar(ctx context.Context, filter domain.CalendarFilter) ([]*domain.Booking, error)
	History(ctx context.Context, filter domain.HistoryFilter) ([]*domain.Booking, error)
	CountHistory(ctx context.Context, filter domain.HistoryFilter) (int, error)
}

// RoomRepository интерфейс справочника комнат
type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package delete_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/RoomBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("delete_booking: booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("delete_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("delete_booking: internal error: %w", domain.ErrStoreUnavailable)
)

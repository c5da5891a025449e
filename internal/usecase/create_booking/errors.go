package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/RoomBookingService/internal/domain"
)

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrAssociationRequired возвращается, когда не удалось определить ассоциацию бронирования
	ErrAssociationRequired = errors.New("create_booking: association is required")

	// ErrUnknownAssociation возвращается, когда указанная ассоциация не существует
	ErrUnknownAssociation = errors.New("create_booking: association not found")

	// ErrInternal возвращается при внутренних ошибках usecase (недоступность хранилища)
	ErrInternal = fmt.Errorf("create_booking: internal error: %w", domain.ErrStoreUnavailable)
)

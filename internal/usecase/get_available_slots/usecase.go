package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/RoomBookingService/internal/domain"
)

// UseCase use case для получения доступных слотов по всем комнатам
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	rules        domain.BookingRules
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	rules domain.BookingRules,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		rules:        rules,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date)

	// 1. Получаем текущее время
	today := uc.timeProvider.Now()

	// 2. Валидация даты
	date, err := time.ParseInLocation(domain.DateFormat, req.Date, today.Location())
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date %q: %v", req.Date, err)
		return nil, ErrInvalidDate
	}

	// 3. Получаем комнаты
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 4. Получаем бронирования всех комнат на дату
	bookings, err := uc.bookingRepo.ListByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	byRoom := make(map[int64][]*domain.Booking, len(rooms))
	for _, b := range bookings {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}

	// 5. Считаем доступность каждой комнаты
	resp := &Response{
		Date:  date,
		Rooms: make([]RoomSlots, 0, len(rooms)),
	}

	for _, room := range rooms {
		availability, err := uc.rules.Availability(room, date, today, byRoom[room.ID])
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to compute availability for room=%d: %v", room.ID, err)
			return nil, fmt.Errorf("%w: availability: %v", ErrInternal, err)
		}
		resp.Rooms = append(resp.Rooms, toRoomSlots(availability))
	}

	uc.logger.Info("GetAvailableSlots: date=%s, rooms=%d, bookings=%d", req.Date, len(rooms), len(bookings))

	return resp, nil
}

func toRoomSlots(a *domain.RoomAvailability) RoomSlots {
	slots := make([]Slot, 0, len(a.Slots))
	for _, s := range a.Slots {
		slot := Slot{
			StartTime: s.Window.Start,
			EndTime:   s.Window.End,
			Available: s.Available,
		}
		if s.BookedBy != nil {
			id := s.BookedBy.ID
			slot.BookingID = &id
		}
		slots = append(slots, slot)
	}

	return RoomSlots{
		RoomID:      a.Room.ID,
		RoomName:    a.Room.Name,
		Slots:       slots,
		Remaining:   a.Remaining,
		Total:       a.Total,
		FullyBooked: a.IsFullyBooked(),
	}
}

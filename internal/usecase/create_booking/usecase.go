package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/RoomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/RoomBookingService/pkg/txmanager"
)

const (
	operation       = "create"
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	rules        domain.BookingRules
	recorder     DecisionRecorder
	events       EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// recorder и events могут быть nil-указателями, если метрики и события выключены.
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	rules domain.BookingRules,
	recorder DecisionRecorder,
	events EventPublisher,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		rules:        rules,
		recorder:     recorder,
		events:       events,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликта и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Ассоциацию обычного пользователя берем из токена, а не из тела запроса
	associationID := req.AssociationID
	if !req.Requester.IsAdmin() {
		associationID = req.Requester.AssociationID
	}

	uc.logger.Info("CreateBooking: association=%d, room=%d, date=%s, time=%s, duration=%d",
		associationID, req.RoomID, req.Date, req.StartTime, req.DurationMinutes)

	if associationID <= 0 {
		uc.logger.Warn("CreateBooking: association is not set (role=%s)", req.Requester.Role)
		uc.record(outcomeRejected, "format")
		return nil, ErrAssociationRequired
	}

	bookingReq := domain.BookingRequest{
		Date:            req.Date,
		RoomID:          req.RoomID,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		BookerFirstName: req.BookerFirstName,
		BookerLastName:  req.BookerLastName,
		AssociationID:   associationID,
	}

	// 2. Получаем текущее время
	today := uc.timeProvider.Now()

	// 3. Предварительная проверка без обращения к БД (формат, дата, часы, блокировки)
	candidate, err := uc.rules.EvaluateBooking(bookingReq, nil, today)
	if err != nil {
		return nil, uc.reject(err)
	}

	// 4. Проверяем, что комната существует
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			uc.record(outcomeRejected, "format")
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		uc.record(outcomeError, "")
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	var created *domain.Booking

	// 5. Окончательная проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Бронирования комнаты на дату с блокировкой (FOR UPDATE)
		existing, err := uc.bookingRepo.ListByDateAndRoom(txCtx, candidate.BookingDate, req.RoomID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 5.2. Полная проверка, включая пересечения
		booking, err := uc.rules.EvaluateBooking(bookingReq, existing, today)
		if err != nil {
			return err
		}

		// 5.3. Сохраняем
		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		return nil, uc.handleTxError(err)
	}

	created.RoomName = room.Name
	uc.logger.Info("CreateBooking: booking id=%d created for association=%d, room=%d, %s %s-%s",
		created.ID, created.AssociationID, created.RoomID,
		created.BookingDate.Format(domain.DateFormat), created.StartTime, created.EndTime)
	uc.record(outcomeAccepted, "")
	uc.publish(ctx, created)

	return toResponse(created, room), nil
}

// handleTxError приводит ошибки транзакции к ошибкам usecase.
// Гонка за слот (уникальный индекс или сериализация) равносильна конфликту.
func (uc *UseCase) handleTxError(err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrSlotConflict), errors.Is(err, txmanager.ErrSerialization):
		uc.logger.Warn("CreateBooking: slot taken concurrently: %v", err)
		uc.record(outcomeRejected, domain.RejectionKind(domain.ErrConflict))
		return fmt.Errorf("%w: slot was booked concurrently", domain.ErrConflict)

	case errors.Is(err, bookingRepo.ErrUnknownReference):
		uc.logger.Warn("CreateBooking: unknown association: %v", err)
		uc.record(outcomeRejected, "format")
		return ErrUnknownAssociation

	case errors.Is(err, ErrInternal):
		uc.record(outcomeError, "")
		return err
	}

	if _, ok := domain.AsRejection(err); ok {
		return uc.reject(err)
	}

	uc.logger.Error("CreateBooking: transaction failed: %v", err)
	uc.record(outcomeError, "")
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

func (uc *UseCase) reject(err error) error {
	if _, ok := domain.AsRejection(err); !ok {
		uc.logger.Error("CreateBooking: rules evaluation failed: %v", err)
		uc.record(outcomeError, "")
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Warn("CreateBooking: rejected: %v", err)
	uc.record(outcomeRejected, domain.RejectionKind(err))
	return err
}

func (uc *UseCase) record(outcome, kind string) {
	if uc.recorder != nil {
		uc.recorder.RecordBookingDecision(operation, outcome, kind)
	}
}

// publish отправляет событие о созданном бронировании.
// Бронирование уже сохранено, поэтому ошибка публикации только логируется.
func (uc *UseCase) publish(ctx context.Context, booking *domain.Booking) {
	if uc.events == nil {
		return
	}
	event := domain.NewBookingEvent(booking, uc.timeProvider.Now())
	if err := uc.events.PublishJSON(ctx, domain.EventBookingCreated, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%d: %v", booking.ID, err)
	}
}

package delete_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/RoomBookingService/internal/infra/storage/booking"
)

const (
	operation       = "delete"
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// UseCase use case для удаления бронирования
type UseCase struct {
	bookingRepo     BookingRepository
	associationRepo AssociationRepository
	verifier        CredentialVerifier
	txManager       TransactionManager
	recorder        DecisionRecorder
	events          EventPublisher
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	associationRepo AssociationRepository,
	verifier CredentialVerifier,
	txManager TransactionManager,
	recorder DecisionRecorder,
	events EventPublisher,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		associationRepo: associationRepo,
		verifier:        verifier,
		txManager:       txManager,
		recorder:        recorder,
		events:          events,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case удаления бронирования.
// Порядок проверок: владелец, пароль, не прошло ли бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DeleteBooking: booking=%d, role=%s, association=%d",
		req.BookingID, req.Requester.Role, req.Requester.AssociationID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		uc.logger.Warn("DeleteBooking: invalid booking id=%d", req.BookingID)
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	requester := domain.Requester{
		Role:          domain.Role(req.Requester.Role),
		AssociationID: req.Requester.AssociationID,
		Credential:    req.Requester.Password,
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var deleted *domain.Booking

	// 3. Проверка и удаление в одной транзакции: строка бронирования блокируется
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 3.2. Пароль сверяется с кодом ассоциации-владельца, хеш читается только при необходимости
		var lookupErr error
		verify := func(secret string) bool {
			association, err := uc.associationRepo.GetByID(txCtx, booking.AssociationID)
			if err != nil {
				lookupErr = err
				return false
			}
			return uc.verifier.Verify(association.CodeHash, secret)
		}

		err = domain.EvaluateDeletion(booking, requester, verify, now)
		if lookupErr != nil {
			return fmt.Errorf("%w: failed to get association id=%d: %v", ErrInternal, booking.AssociationID, lookupErr)
		}
		if err != nil {
			return err
		}

		// 3.3. Удаляем
		if _, err := uc.bookingRepo.Delete(txCtx, booking.ID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
		}

		deleted = booking
		return nil
	})

	if err != nil {
		return nil, uc.handleError(req, err)
	}

	uc.logger.Info("DeleteBooking: booking id=%d deleted (%s %s, room=%d)",
		deleted.ID, deleted.BookingDate.Format(domain.DateFormat), deleted.StartTime, deleted.RoomID)
	uc.record(outcomeAccepted, "")
	uc.publish(ctx, deleted)

	return &Response{
		ID:              deleted.ID,
		BookingDate:     deleted.BookingDate,
		RoomID:          deleted.RoomID,
		RoomName:        deleted.RoomName,
		StartTime:       deleted.StartTime,
		EndTime:         deleted.EndTime,
		AssociationID:   deleted.AssociationID,
		AssociationName: deleted.AssociationName,
	}, nil
}

func (uc *UseCase) handleError(req *Request, err error) error {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		uc.logger.Warn("DeleteBooking: booking id=%d not found", req.BookingID)
		return err

	case errors.Is(err, ErrInternal):
		uc.logger.Error("DeleteBooking: %v", err)
		uc.record(outcomeError, "")
		return err
	}

	if _, ok := domain.AsRejection(err); ok {
		uc.logger.Warn("DeleteBooking: booking id=%d rejected: %v", req.BookingID, err)
		uc.record(outcomeRejected, domain.RejectionKind(err))
		return err
	}

	uc.logger.Error("DeleteBooking: transaction failed: %v", err)
	uc.record(outcomeError, "")
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

func (uc *UseCase) record(outcome, kind string) {
	if uc.recorder != nil {
		uc.recorder.RecordBookingDecision(operation, outcome, kind)
	}
}

// publish отправляет событие об удаленном бронировании, ошибка только логируется
func (uc *UseCase) publish(ctx context.Context, booking *domain.Booking) {
	if uc.events == nil {
		return
	}
	event := domain.NewBookingEvent(booking, uc.timeProvider.Now())
	if err := uc.events.PublishJSON(ctx, domain.EventBookingDeleted, event); err != nil {
		uc.logger.Warn("DeleteBooking: failed to publish event for booking id=%d: %v", booking.ID, err)
	}
}

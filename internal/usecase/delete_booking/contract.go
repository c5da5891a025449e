package delete_booking

import (
	"context"
	"time"

	"github.com/m04kA/RoomBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// AssociationRepository нужен для получения хеша кода ассоциации-владельца
type AssociationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Association, error)
}

// CredentialVerifier сверяет предъявленный секрет с хешем
type CredentialVerifier interface {
	Verify(hash, secret string) bool
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// DecisionRecorder учитывает решения по бронированиям (метрики)
type DecisionRecorder interface {
	RecordBookingDecision(operation, outcome, kind string)
}

// EventPublisher публикует события бронирований после коммита
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package associations

import (
	"context"

	"github.com/m04kA/RoomBookingService/internal/domain"
)

// AssociationRepository интерфейс репозитория ассоциаций
type AssociationRepository interface {
	List(ctx context.Context) ([]*domain.Association, error)
	Create(ctx context.Context, association *domain.Association) (*domain.Association, error)
	CountBookings(ctx context.Context, id int64) (int64, error)
	Delete(ctx context.Context, id int64) error
	UpdateCodeHash(ctx context.Context, id int64, codeHash string) error
}

// Hasher хеширует коды ассоциаций
type Hasher interface {
	Hash(secret string) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

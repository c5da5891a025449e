package auth

import (
	"context"
	"time"

	"github.com/m04kA/RoomBookingService/internal/domain"
	jwtauth "github.com/m04kA/RoomBookingService/pkg/auth"
)

// AssociationRepository источник хешей кодов ассоциаций
type AssociationRepository interface {
	ListCredentials(ctx context.Context) ([]*domain.Association, error)
}

// Verifier сверяет код с bcrypt-хешем
type Verifier interface {
	Verify(hash, secret string) bool
}

// TokenIssuer выпускает токен сессии
type TokenIssuer interface {
	Issue(identity jwtauth.Identity) (string, time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

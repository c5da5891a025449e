package list_associations

import (
	"context"

	"github.com/m04kA/RoomBookingService/internal/service/associations/models"
)

type AssociationService interface {
	List(ctx context.Context) ([]models.AssociationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package delete_association

import (
	"context"

	"github.com/m04kA/RoomBookingService/internal/service/associations/models"
)

type AssociationService interface {
	Delete(ctx context.Context, id int64) (*models.DeleteAssociationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

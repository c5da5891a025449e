package create_association

import (
	"context"

	"github.com/m04kA/RoomBookingService/internal/service/associations/models"
)

type AssociationService interface {
	Create(ctx context.Context, req *models.CreateAssociationRequest) (*models.AssociationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

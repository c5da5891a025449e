package update_association_password

import (
	"context"

	"github.com/m04kA/RoomBookingService/internal/service/associations/models"
)

type AssociationService interface {
	UpdatePassword(ctx context.Context, id int64, req *models.UpdatePasswordRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

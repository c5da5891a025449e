package delete_association

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RoomBookingService/internal/api/handlers"
	"github.com/m04kA/RoomBookingService/internal/service/associations"
)

const (
	msgInvalidAssociationID = "Ogiltigt förenings-ID"
	msgNotFound             = "Föreningen hittades inte"
)

type Handler struct {
	service AssociationService
	logger  Logger
}

func NewHandler(service AssociationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/associations/{associationId}
// Удаляет ассоциацию вместе со всеми её бронированиями. Только для администратора.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	associationID, err := strconv.ParseInt(mux.Vars(r)["associationId"], 10, 64)
	if err != nil || associationID <= 0 {
		h.logger.Warn("DELETE /associations/{id} - Invalid association ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssociationID)
		return
	}

	result, err := h.service.Delete(r.Context(), associationID)
	if err != nil {
		switch {
		case errors.Is(err, associations.ErrAssociationNotFound):
			h.logger.Warn("DELETE /associations/{id} - Association not found: association_id=%d", associationID)
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, associations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidAssociationID)
		default:
			h.logger.Error("DELETE /associations/{id} - Failed to delete association: association_id=%d, error=%v",
				associationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /associations/{id} - Association deleted: association_id=%d, deleted_bookings=%d",
		result.ID, result.DeletedBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}

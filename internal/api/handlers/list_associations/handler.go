package list_associations

import (
	"net/http"

	"github.com/m04kA/RoomBookingService/internal/api/handlers"
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

// Handle GET /api/v1/associations
// Только для администратора
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /associations - Failed to list associations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /associations - Associations retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}

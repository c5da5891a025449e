package update_association_password

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RoomBookingService/internal/api/handlers"
	"github.com/m04kA/RoomBookingService/internal/service/associations"
	"github.com/m04kA/RoomBookingService/internal/service/associations/models"
)

const (
	msgInvalidAssociationID = "Ogiltigt förenings-ID"
	msgInvalidRequestBody   = "Ogiltig förfrågan"
	msgPasswordTooShort     = "Lösenordet måste vara minst 6 tecken långt"
	msgPasswordTooLong      = "Lösenordet kan inte vara längre än 50 tecken"
	msgNotFound             = "Föreningen hittades inte"
	msgUpdated              = "Lösenordet har uppdaterats"
)

// UpdatePasswordResponse HTTP response model
type UpdatePasswordResponse struct {
	Message string `json:"message"`
}

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

// Handle PUT /api/v1/associations/{associationId}/password
// Только для администратора
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	associationID, err := strconv.ParseInt(mux.Vars(r)["associationId"], 10, 64)
	if err != nil || associationID <= 0 {
		h.logger.Warn("PUT /associations/{id}/password - Invalid association ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssociationID)
		return
	}

	var req models.UpdatePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /associations/{id}/password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdatePassword(r.Context(), associationID, &req); err != nil {
		switch {
		case errors.Is(err, associations.ErrPasswordTooLong):
			handlers.RespondBadRequest(w, msgPasswordTooLong)
		case errors.Is(err, associations.ErrInvalidPassword):
			handlers.RespondBadRequest(w, msgPasswordTooShort)
		case errors.Is(err, associations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		case errors.Is(err, associations.ErrAssociationNotFound):
			h.logger.Warn("PUT /associations/{id}/password - Association not found: association_id=%d", associationID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("PUT /associations/{id}/password - Failed to update password: association_id=%d, error=%v",
				associationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /associations/{id}/password - Password updated: association_id=%d", associationID)
	handlers.RespondJSON(w, http.StatusOK, UpdatePasswordResponse{Message: msgUpdated})
}

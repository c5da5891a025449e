package create_association

import (
	"errors"
	"net/http"

	"github.com/m04kA/RoomBookingService/internal/api/handlers"
	"github.com/m04kA/RoomBookingService/internal/service/associations"
	"github.com/m04kA/RoomBookingService/internal/service/associations/models"
)

const (
	msgInvalidRequestBody = "Ogiltig förfrågan"
	msgNameTooShort       = "Föreningsnamnet måste vara minst 2 tecken långt"
	msgNameTooLong        = "Föreningsnamnet kan inte vara längre än 100 tecken"
	msgPasswordTooShort   = "Lösenordet måste vara minst 6 tecken långt"
	msgPasswordTooLong    = "Lösenordet kan inte vara längre än 50 tecken"
	msgNameTaken          = "En förening med detta namn finns redan"
	msgCreated            = "Föreningen har skapats!"
)

// CreateAssociationResponse HTTP response model
type CreateAssociationResponse struct {
	Message     string                     `json:"message"`
	Association models.AssociationResponse `json:"association"`
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

// Handle POST /api/v1/associations
// Только для администратора
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAssociationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /associations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		// TooLong проверяем раньше: они оборачивают ErrInvalidName и ErrInvalidPassword
		case errors.Is(err, associations.ErrNameTooLong):
			handlers.RespondBadRequest(w, msgNameTooLong)
		case errors.Is(err, associations.ErrInvalidName):
			handlers.RespondBadRequest(w, msgNameTooShort)
		case errors.Is(err, associations.ErrPasswordTooLong):
			handlers.RespondBadRequest(w, msgPasswordTooLong)
		case errors.Is(err, associations.ErrInvalidPassword):
			handlers.RespondBadRequest(w, msgPasswordTooShort)
		case errors.Is(err, associations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, associations.ErrNameTaken):
			h.logger.Warn("POST /associations - Name taken: name=%q", req.Name)
			handlers.RespondConflict(w, msgNameTaken)

		default:
			h.logger.Error("POST /associations - Failed to create association: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /associations - Association created successfully: association_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, CreateAssociationResponse{
		Message:     msgCreated,
		Association: *result,
	})
}

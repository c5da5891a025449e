package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/RoomBookingService/internal/api/handlers"
	"github.com/m04kA/RoomBookingService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "Ogiltig förfrågan"
	msgInvalidCode        = "Invalid login code"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/login
// Публичный endpoint: код администратора или ассоциации в обмен на токен
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCode), errors.Is(err, auth.ErrInvalidInput):
			// Код в лог не пишем
			h.logger.Warn("POST /login - Invalid login code")
			handlers.RespondUnauthorized(w, msgInvalidCode)
		default:
			h.logger.Error("POST /login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /login - Logged in: role=%s, association_id=%d", result.Role, result.AssociationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

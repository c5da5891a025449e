package get_booking_history

import (
	"errors"
	"net/http"

	"github.com/m04kA/RoomBookingService/internal/api/handlers"
	"github.com/m04kA/RoomBookingService/internal/api/middleware"
	"github.com/m04kA/RoomBookingService/internal/service/bookings"
)

const (
	msgInvalidParams    = "Ogiltiga parametrar"
	msgInvalidTimeRange = "Startdatum måste vara före slutdatum"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/history
// Query params: limit, offset, associationId (только админ), fromDate, toDate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.RequesterFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	serviceReq, err := ToServiceRequest(r.URL.Query(), requester)
	if err != nil {
		h.logger.Warn("GET /bookings/history - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetHistory(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidTimeRange):
			h.logger.Warn("GET /bookings/history - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/history - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /bookings/history - Failed to get history: association_id=%d, error=%v",
				requester.AssociationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/history - History retrieved successfully: role=%s, count=%d, total=%d",
		requester.Role, len(result.Bookings), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

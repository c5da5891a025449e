package get_calendar_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/RoomBookingService/internal/api/handlers"
	"github.com/m04kA/RoomBookingService/internal/service/bookings"
)

const (
	msgInvalidMonth  = "Ogiltig månad, förväntat format YYYY-MM"
	msgInvalidRoomID = "Ogiltigt rums-ID"
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

// Handle GET /api/v1/bookings
// Query params: month (обязательный, YYYY-MM), roomId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq, err := ToServiceRequest(r.URL.Query().Get("month"), r.URL.Query().Get("roomId"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	result, err := h.service.GetCalendar(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidMonth):
			h.logger.Warn("GET /bookings - Invalid month: %s", serviceReq.Month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRoomID)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: month=%s, error=%v", serviceReq.Month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: month=%s, count=%d",
		serviceReq.Month, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}

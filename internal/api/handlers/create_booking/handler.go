package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/RoomBookingService/internal/api/handlers"
	"github.com/m04kA/RoomBookingService/internal/api/middleware"
	"github.com/m04kA/RoomBookingService/internal/domain"
	createBooking "github.com/m04kA/RoomBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "Ogiltig förfrågan"
	msgRoomNotFound        = "Rummet hittades inte"
	msgAssociationRequired = "Förening måste anges"
	msgUnknownAssociation  = "Föreningen hittades inte"
	msgConcurrentBooking   = "Tiden bokades precis av någon annan"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.RequesterFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(requester))
	if err != nil {
		h.handleError(w, &req, err)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, association_id=%d, room_id=%d",
		result.ID, result.AssociationID, result.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) handleError(w http.ResponseWriter, req *CreateBookingRequest, err error) {
	// Отказы движка правил: конфликт 409, остальные 400
	if rejection, ok := domain.AsRejection(err); ok {
		h.logger.Warn("POST /bookings - Rejected: room_id=%d, date=%s, start=%s: %v",
			req.RoomID, req.Date, req.StartTime, err)
		status := http.StatusBadRequest
		if errors.Is(rejection, domain.ErrConflict) {
			status = http.StatusConflict
		}
		handlers.RespondRejection(w, status, rejection, "")
		return
	}

	switch {
	case errors.Is(err, domain.ErrConflict):
		// Слот заняли параллельно, уже после проверки правил
		h.logger.Warn("POST /bookings - Slot taken concurrently: room_id=%d, date=%s, start=%s",
			req.RoomID, req.Date, req.StartTime)
		handlers.RespondRejection(w, http.StatusConflict,
			&domain.RejectionError{Kind: domain.ErrConflict, Field: "startTime"}, msgConcurrentBooking)

	case errors.Is(err, createBooking.ErrRoomNotFound):
		h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
		handlers.RespondNotFound(w, msgRoomNotFound)

	case errors.Is(err, createBooking.ErrAssociationRequired):
		h.logger.Warn("POST /bookings - Association required")
		handlers.RespondBadRequest(w, msgAssociationRequired)

	case errors.Is(err, createBooking.ErrUnknownAssociation):
		h.logger.Warn("POST /bookings - Unknown association: association_id=%d", req.AssociationID)
		handlers.RespondBadRequest(w, msgUnknownAssociation)

	default:
		h.logger.Error("POST /bookings - Failed to create booking: room_id=%d, date=%s, error=%v",
			req.RoomID, req.Date, err)
		handlers.RespondInternalError(w)
	}
}

package delete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RoomBookingService/internal/api/handlers"
	"github.com/m04kA/RoomBookingService/internal/api/middleware"
	"github.com/m04kA/RoomBookingService/internal/domain"
	deleteBooking "github.com/m04kA/RoomBookingService/internal/usecase/delete_booking"
)

const (
	msgInvalidBookingID   = "Ogiltigt boknings-ID"
	msgInvalidRequestBody = "Ogiltig förfrågan"
	msgNotFound           = "Bokningen hittades inte"
	msgForbidden          = "Du har inte behörighet att radera denna bokning"
	msgInvalidPassword    = "Felaktigt lösenord. Vänligen ange din föreningskod."
	msgAlreadyPassed      = "Du kan inte radera en bokning som redan har passerat"
	msgDeleteFailed       = "Ett fel uppstod vid radering av bokningen"
	msgDeleted            = "Bokningen har raderats"
)

type Handler struct {
	useCase DeleteBookingUseCase
	logger  Logger
}

func NewHandler(useCase DeleteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.RequesterFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req DeleteBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID, requester))
	if err != nil {
		h.handleError(w, bookingID, requester, err)
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking deleted: booking_id=%d, association_id=%d, by role=%s",
		result.ID, result.AssociationID, requester.Role)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) handleError(w http.ResponseWriter, bookingID int64, requester domain.Requester, err error) {
	if rejection, ok := domain.AsRejection(err); ok {
		h.logger.Warn("DELETE /bookings/{id} - Rejected: booking_id=%d, association_id=%d: %v",
			bookingID, requester.AssociationID, err)

		switch {
		case errors.Is(rejection, domain.ErrForbidden):
			handlers.RespondRejection(w, http.StatusForbidden, rejection, msgForbidden)
		case errors.Is(rejection, domain.ErrInvalidCredential):
			handlers.RespondRejection(w, http.StatusUnauthorized, rejection, msgInvalidPassword)
		case errors.Is(rejection, domain.ErrAlreadyPassed):
			handlers.RespondRejection(w, http.StatusBadRequest, rejection, msgAlreadyPassed)
		default:
			handlers.RespondRejection(w, http.StatusBadRequest, rejection, "")
		}
		return
	}

	switch {
	case errors.Is(err, deleteBooking.ErrBookingNotFound):
		h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%d", bookingID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, deleteBooking.ErrInvalidInput):
		h.logger.Warn("DELETE /bookings/{id} - Invalid input: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)

	case errors.Is(err, domain.ErrStoreUnavailable):
		h.logger.Error("DELETE /bookings/{id} - Store unavailable: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)

	default:
		h.logger.Error("DELETE /bookings/{id} - Failed to delete booking: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgDeleteFailed)
	}
}

package get_calendar_bookings

import (
	"strconv"

	"github.com/m04kA/RoomBookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров
func ToServiceRequest(month, roomIDStr string) (*models.CalendarRequest, error) {
	req := &models.CalendarRequest{Month: month}

	if roomIDStr != "" {
		roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RoomID = &roomID
	}

	return req, nil
}

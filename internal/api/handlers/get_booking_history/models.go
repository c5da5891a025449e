package get_booking_history

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/RoomBookingService/internal/domain"
	"github.com/m04kA/RoomBookingService/internal/service/bookings/models"
	"github.com/m04kA/RoomBookingService/pkg/ptr"
)

// ToServiceRequest собирает запрос к сервису из query параметров и вошедшего пользователя
func ToServiceRequest(query url.Values, requester domain.Requester) (*models.HistoryRequest, error) {
	req := &models.HistoryRequest{
		Role:                   string(requester.Role),
		RequesterAssociationID: requester.AssociationID,
	}

	var err error
	if req.Limit, err = optionalInt(query, "limit"); err != nil {
		return nil, err
	}
	if req.Offset, err = optionalInt(query, "offset"); err != nil {
		return nil, err
	}

	if value := query.Get("associationId"); value != "" {
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("associationId: %w", err)
		}
		req.AssociationID = &id
	}

	if value := query.Get("fromDate"); value != "" {
		req.FromDate = ptr.Ptr(value)
	}
	if value := query.Get("toDate"); value != "" {
		req.ToDate = ptr.Ptr(value)
	}

	return req, nil
}

func optionalInt(query url.Values, key string) (int, error) {
	value := query.Get(key)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

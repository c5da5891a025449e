package get_calendar_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RoomBookingService/internal/service/bookings"
	"github.com/m04kA/RoomBookingService/internal/service/bookings/models"
)

type fakeService struct {
	got  *models.CalendarRequest
	resp *models.BookingListResponse
	err  error
}

func (f *fakeService) GetCalendar(_ context.Context, req *models.CalendarRequest) (*models.BookingListResponse, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := &fakeService{resp: &models.BookingListResponse{Bookings: []models.BookingResponse{{ID: 1, RoomName: "Wilmer 1"}}}}

	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/bookings?month=2025-11&roomId=2", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"roomName":"Wilmer 1"`)
	require.NotNil(t, svc.got.RoomID)
	assert.Equal(t, int64(2), *svc.got.RoomID)
	assert.Equal(t, "2025-11", svc.got.Month)
}

func TestHandle_Errors(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(&fakeService{}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/bookings?roomId=x", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	NewHandler(&fakeService{err: bookings.ErrInvalidMonth}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/bookings?month=nov", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	NewHandler(&fakeService{err: bookings.ErrInternal}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

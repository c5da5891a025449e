package list_associations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/RoomBookingService/internal/service/associations/models"
)

type fakeService struct {
	list []models.AssociationResponse
	err  error
}

func (f *fakeService) List(context.Context) ([]models.AssociationResponse, error) {
	return f.list, f.err
}

func TestHandle(t *testing.T) {
	svc := &fakeService{list: []models.AssociationResponse{{ID: 1, Name: "BRF Wilmer", BookingCount: 4}}}

	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/associations", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bookingCount":4`)
	assert.NotContains(t, w.Body.String(), "hash")

	w = httptest.NewRecorder()
	NewHandler(&fakeService{err: errors.New("db down")}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/associations", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

package create_association

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RoomBookingService/internal/service/associations"
	"github.com/m04kA/RoomBookingService/internal/service/associations/models"
)

type fakeService struct {
	got  *models.CreateAssociationRequest
	resp *models.AssociationResponse
	err  error
}

func (f *fakeService) Create(_ context.Context, req *models.CreateAssociationRequest) (*models.AssociationResponse, error) {
	f.got = req
	return f.resp, f.err
}

func serve(svc AssociationService, payload string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/associations", strings.NewReader(payload)))
	return w
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{resp: &models.AssociationResponse{ID: 5, Name: "BRF Wilmer"}}

	w := serve(svc, `{"name":"BRF Wilmer","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Föreningen har skapats!")
	assert.Contains(t, w.Body.String(), `"id":5`)
	assert.Equal(t, "secret1", svc.got.Password)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		err      error
		want     int
		contains string
	}{
		{name: "bad body", payload: `[]`, want: http.StatusBadRequest},
		{name: "short name", err: fmt.Errorf("%w: min", associations.ErrInvalidName), want: http.StatusBadRequest, contains: "minst 2 tecken"},
		{name: "long name", err: associations.ErrNameTooLong, want: http.StatusBadRequest, contains: "längre än 100"},
		{name: "short password", err: associations.ErrInvalidPassword, want: http.StatusBadRequest, contains: "minst 6 tecken"},
		{name: "long password", err: fmt.Errorf("%w: bcrypt", associations.ErrPasswordTooLong), want: http.StatusBadRequest, contains: "längre än 50"},
		{name: "duplicate", err: associations.ErrNameTaken, want: http.StatusConflict, contains: "finns redan"},
		{name: "internal", err: associations.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := tt.payload
			if payload == "" {
				payload = `{"name":"BRF Wilmer","password":"secret1"}`
			}

			w := serve(&fakeService{err: tt.err}, payload)

			assert.Equal(t, tt.want, w.Code)
			if tt.contains != "" {
				assert.Contains(t, w.Body.String(), tt.contains)
			}
		})
	}
}

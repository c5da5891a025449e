package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RoomBookingService/internal/domain"
	"github.com/m04kA/RoomBookingService/pkg/auth"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTokens(t *testing.T) *auth.TokenManager {
	t.Helper()
	tm, err := auth.NewTokenManager("test-secret", time.Hour, "room-booking")
	require.NoError(t, err)
	return tm
}

func TestAuth(t *testing.T) {
	tokens := newTokens(t)

	var got domain.Requester
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requester, ok := RequesterFromContext(r.Context())
		require.True(t, ok)
		got = requester
		w.WriteHeader(http.StatusNoContent)
	})
	h := Auth(tokens, nopLogger{})(next)

	t.Run("valid token", func(t *testing.T) {
		token, _, err := tokens.Issue(auth.Identity{Role: "user", AssociationID: 7, AssociationName: "BRF Wilmer"})
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, domain.Requester{Role: domain.RoleAssociation, AssociationID: 7}, got)
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		r.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("foreign secret", func(t *testing.T) {
		other, err := auth.NewTokenManager("other-secret", time.Hour, "room-booking")
		require.NoError(t, err)
		token, _, err := other.Issue(auth.Identity{Role: "admin"})
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := RequireRole(domain.RoleAdmin)(next)

	tests := []struct {
		name     string
		identity *auth.Identity
		want     int
	}{
		{name: "admin", identity: &auth.Identity{Role: "admin"}, want: http.StatusOK},
		{name: "association", identity: &auth.Identity{Role: "user", AssociationID: 1}, want: http.StatusForbidden},
		{name: "anonymous", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/associations", nil)
			if tt.identity != nil {
				r = r.WithContext(WithIdentity(r.Context(), *tt.identity))
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

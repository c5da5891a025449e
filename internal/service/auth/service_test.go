package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RoomBookingService/internal/domain"
	jwtauth "github.com/m04kA/RoomBookingService/pkg/auth"
	"github.com/m04kA/RoomBookingService/pkg/credential"
)

type mockRepo struct {
	associations []*domain.Association
	err          error
}

func (m *mockRepo) ListCredentials(context.Context) ([]*domain.Association, error) {
	return m.associations, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func hash(t *testing.T, h *credential.Hasher, secret string) string {
	t.Helper()
	out, err := h.Hash(secret)
	require.NoError(t, err)
	return out
}

func newTestService(t *testing.T, repo *mockRepo) (*Service, *jwtauth.TokenManager) {
	t.Helper()

	hasher := credential.NewHasher(4)
	tokens, err := jwtauth.NewTokenManager("test-secret", time.Hour, "room-booking-test")
	require.NoError(t, err)

	for _, a := range repo.associations {
		a.CodeHash = hash(t, hasher, a.CodeHash)
	}

	return NewService(repo, hasher, tokens, hash(t, hasher, "admin-code"), nopLogger{}), tokens
}

func TestService_Login(t *testing.T) {
	repo := &mockRepo{associations: []*domain.Association{
		{ID: 1, Name: "Schackklubben", CodeHash: "schack123"},
		{ID: 2, Name: "Körföreningen", CodeHash: "kör4567"},
	}}
	svc, tokens := newTestService(t, repo)

	t.Run("admin", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &LoginRequest{Code: "admin-code"})
		require.NoError(t, err)
		assert.Equal(t, string(domain.RoleAdmin), resp.Role)
		assert.Zero(t, resp.AssociationID)

		claims, err := tokens.Parse(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, string(domain.RoleAdmin), claims.Role)
	})

	t.Run("association", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &LoginRequest{Code: " kör4567 "})
		require.NoError(t, err)
		assert.Equal(t, string(domain.RoleAssociation), resp.Role)
		assert.Equal(t, int64(2), resp.AssociationID)
		assert.Equal(t, "Körföreningen", resp.AssociationName)

		claims, err := tokens.Parse(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(2), claims.AssociationID)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &LoginRequest{Code: "gissning"})
		assert.ErrorIs(t, err, ErrInvalidCode)
	})

	t.Run("empty code", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &LoginRequest{Code: "  "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Login_RepositoryError(t *testing.T) {
	svc, _ := newTestService(t, &mockRepo{err: errors.New("down")})

	_, err := svc.Login(context.Background(), &LoginRequest{Code: "schack123"})
	assert.ErrorIs(t, err, ErrInternal)

	// администратор входит даже при недоступной БД
	_, err = svc.Login(context.Background(), &LoginRequest{Code: "admin-code"})
	assert.NoError(t, err)
}

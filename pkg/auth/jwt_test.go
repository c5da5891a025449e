package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, secret string, ttl time.Duration) *TokenManager {
	t.Helper()
	m, err := NewTokenManager(secret, ttl, "room-booking")
	require.NoError(t, err)
	return m
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := newTestManager(t, "secret", time.Hour)

	token, expiresAt, err := m.Issue(Identity{Role: "user", AssociationID: 3, AssociationName: "Förening A"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, int64(3), claims.AssociationID)
	assert.Equal(t, "Förening A", claims.AssociationName)
	assert.Equal(t, "3", claims.Subject)
}

func TestTokenManager_AdminSubject(t *testing.T) {
	m := newTestManager(t, "secret", time.Hour)

	token, _, err := m.Issue(Identity{Role: "admin"})
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Zero(t, claims.AssociationID)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := newTestManager(t, "secret", time.Hour)
	valid, _, err := m.Issue(Identity{Role: "user", AssociationID: 1})
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := newTestManager(t, "other", time.Hour)
		_, err := other.Parse(valid)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := newTestManager(t, "secret", -time.Minute)
		token, _, err := expired.Issue(Identity{Role: "user", AssociationID: 1})
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Role: "admin"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewTokenManager_EmptySecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour, "room-booking")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

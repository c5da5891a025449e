package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken токен не прошёл проверку подписи, срока или формата
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrEmptySecret секрет для подписи не задан
	ErrEmptySecret = errors.New("auth: empty signing secret")
)

// Claims полезная нагрузка токена сессии
type Claims struct {
	Role            string `json:"role"`
	AssociationID   int64  `json:"associationId,omitempty"`
	AssociationName string `json:"associationName,omitempty"`
	jwt.RegisteredClaims
}

// Identity данные, из которых выпускается токен
type Identity struct {
	Role            string
	AssociationID   int64
	AssociationName string
}

// TokenManager выпускает и проверяет HS256 токены
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewTokenManager создает менеджер токенов
func NewTokenManager(secret string, ttl time.Duration, issuer string) (*TokenManager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// Issue подписывает токен для identity, возвращает токен и момент истечения
func (m *TokenManager) Issue(identity Identity) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)

	subject := identity.Role
	if identity.AssociationID > 0 {
		subject = strconv.FormatInt(identity.AssociationID, 10)
	}

	claims := Claims{
		Role:            identity.Role,
		AssociationID:   identity.AssociationID,
		AssociationName: identity.AssociationName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Parse проверяет подпись, алгоритм, издателя и срок действия токена
func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Role == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

package credential

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrTooLong секрет длиннее 72 байт, bcrypt такие не принимает
var ErrTooLong = errors.New("credential: secret too long")

// Hasher хэширует и проверяет коды ассоциаций и пароль администратора
type Hasher struct {
	cost int
}

// NewHasher создает Hasher. cost <= 0 означает bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash возвращает bcrypt-хэш секрета
func (h *Hasher) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrTooLong
		}
		return "", fmt.Errorf("credential: hash: %w", err)
	}
	return string(hash), nil
}

// Verify сравнивает секрет с хэшем. Принимает хэши $2a$, $2b$ и $2y$.
func (h *Hasher) Verify(hash, secret string) bool {
	if hash == "" || secret == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, на которые реагирует сервис
const (
	UniqueViolation      = "23505"
	ForeignKeyViolation  = "23503"
	SerializationFailure = "40001"
	DeadlockDetected     = "40P01"
)

// Code возвращает SQLSTATE ошибки драйвера или пустую строку
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsUniqueViolation нарушение уникального индекса
func IsUniqueViolation(err error) bool {
	return Code(err) == UniqueViolation
}

// IsForeignKeyViolation нарушение внешнего ключа
func IsForeignKeyViolation(err error) bool {
	return Code(err) == ForeignKeyViolation
}

// IsSerializationFailure конфликт сериализуемых транзакций или deadlock
func IsSerializationFailure(err error) bool {
	code := Code(err)
	return code == SerializationFailure || code == DeadlockDetected
}

package auth

import "errors"

var (
	// ErrInvalidCode возвращается, когда код не подошел ни администратору, ни одной ассоциации
	ErrInvalidCode = errors.New("invalid login code")

	// ErrInvalidInput возвращается при пустом коде
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

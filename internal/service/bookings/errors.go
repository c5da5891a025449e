package bookings

import "errors"

var (
	// ErrInvalidMonth возвращается при некорректном месяце календаря
	ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается, когда начало периода позже конца
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

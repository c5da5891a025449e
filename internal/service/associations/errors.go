package associations

import (
	"errors"
	"fmt"
)

var (
	// ErrAssociationNotFound возвращается, когда ассоциация не найдена
	ErrAssociationNotFound = errors.New("association not found")

	// ErrNameTaken возвращается, когда ассоциация с таким именем уже существует
	ErrNameTaken = errors.New("association name already taken")

	// ErrInvalidName возвращается при некорректном имени ассоциации
	ErrInvalidName = errors.New("invalid association name")

	// ErrInvalidPassword возвращается при некорректном пароле (коде) ассоциации
	ErrInvalidPassword = errors.New("invalid association password")

	// ErrNameTooLong имя длиннее допустимого, частный случай ErrInvalidName
	ErrNameTooLong = fmt.Errorf("%w: too long", ErrInvalidName)

	// ErrPasswordTooLong пароль длиннее допустимого, частный случай ErrInvalidPassword
	ErrPasswordTooLong = fmt.Errorf("%w: too long", ErrInvalidPassword)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

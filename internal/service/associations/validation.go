package associations

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// requestValidator проверяет запросы по тегам validate и сводит ошибки к sentinel-ошибкам сервиса
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New()}
}

func (v *requestValidator) Validate(req interface{}) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Сообщаем о первом нарушении: клиенту нужен один понятный текст
	fieldErr := validationErrs[0]
	message := describe(fieldErr)

	tooLong := fieldErr.Tag() == "max"

	switch fieldErr.Field() {
	case "Name":
		if tooLong {
			return fmt.Errorf("%w: %s", ErrNameTooLong, message)
		}
		return fmt.Errorf("%w: %s", ErrInvalidName, message)
	case "Password":
		if tooLong {
			return fmt.Errorf("%w: %s", ErrPasswordTooLong, message)
		}
		return fmt.Errorf("%w: %s", ErrInvalidPassword, message)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidInput, message)
	}
}

func describe(err validator.FieldError) string {
	field := strings.ToLower(err.Field())
	switch err.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, err.Param())
	default:
		return fmt.Sprintf("%s failed %q validation", field, err.Tag())
	}
}

// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"regexp"

	"fitness-center/internal/dto"

	"github.com/go-playground/validator/v10"
)

var phoneRegex = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// RegisterCustomValidations регистрирует все кастомные правила в валидаторе.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("phone_e164", isE164Phone); err != nil {
		return err
	}
	if err := v.RegisterValidation("session_role", isSessionRole); err != nil {
		return err
	}
	return nil
}

func isE164Phone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func isSessionRole(fl validator.FieldLevel) bool {
	return dto.Role(fl.Field().String()).Valid()
}

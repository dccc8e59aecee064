package validator

import (
	"turnos-api/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("date", validateDate)
	_ = v.RegisterValidation("clock", validateClock)
	_ = v.RegisterValidation("shiftstatus", validateShiftStatus)

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors renders one message per failing field, in struct
// field order.
func (cv *CustomValidator) FormatValidationErrors(err error) []string {
	var errors []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors = append(errors, field+" is required")
			case "min":
				errors = append(errors, field+" must be at least "+e.Param()+" characters")
			case "max":
				errors = append(errors, field+" must be at most "+e.Param()+" characters")
			case "gt":
				errors = append(errors, field+" must be greater than "+e.Param())
			case "date":
				errors = append(errors, field+" must be a date in YYYY-MM-DD format")
			case "clock":
				errors = append(errors, field+" must be a time in HH:MM or HH:MM:SS format")
			case "shiftstatus":
				errors = append(errors, field+" must be one of pending, confirmed, completed, cancelled")
			default:
				errors = append(errors, field+" is invalid")
			}
		}
	}

	return errors
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := entity.ParseDate(fl.Field().String())
	return err == nil
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := entity.ParseClock(fl.Field().String())
	return err == nil
}

func validateShiftStatus(fl validator.FieldLevel) bool {
	return entity.ShiftStatus(fl.Field().String()).IsValid()
}

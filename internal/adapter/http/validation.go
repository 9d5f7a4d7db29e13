package http

import (
	"github.com/go-playground/validator/v10"

	"control-horas/pkg/num"
)

type FieldError struct {
	Field   string
	Message string
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// decimalcomma: numeric form input that may use a comma as the decimal
	// separator ("7,5"), matching how the sheet stores hours.
	_ = v.RegisterValidation("decimalcomma", func(fl validator.FieldLevel) bool {
		_, err := num.ParseComma(fl.Field().String())
		return err == nil
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// ToFieldErrors maps validator.ValidationErrors to user-facing messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "es obligatorio"})
		case "decimalcomma":
			out = append(out, FieldError{Field: field, Message: "debe ser un número"})
		case "datetime":
			out = append(out, FieldError{Field: field, Message: "debe ser una fecha válida (AAAA-MM-DD)"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "debe ser como mínimo " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: "no es válido"})
		}
	}
	return out
}

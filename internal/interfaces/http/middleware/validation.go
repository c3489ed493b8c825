package middleware

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator makes binding errors report JSON field names
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
	}
}

// ValidationMessage turns a binding error into a single Portuguese sentence.
// Non-validation errors (malformed JSON, wrong types) get a generic message.
func ValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "Corpo da requisição inválido."
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fieldMessage(e))
	}
	return strings.Join(messages, " ")
}

func fieldMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return field + " é obrigatório."
	case "max":
		return field + " deve ter no máximo " + e.Param() + " caracteres."
	case "min":
		return field + " deve ter no mínimo " + e.Param() + " caracteres."
	case "len":
		return field + " deve ter exatamente " + e.Param() + " caracteres."
	case "uuid":
		return field + " deve ser um UUID válido."
	default:
		return field + " inválido."
	}
}

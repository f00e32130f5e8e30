package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

var lengthSubjects = map[string]string{
	"name":     "O nome",
	"password": "A senha",
	"titulo":   "O titulo",
	"conteudo": "O conteúdo",
}

// validationMessage renders binding failures as pt-BR field messages. Errors
// that are not validation failures (malformed JSON, wrong types) are returned
// verbatim.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, " ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório.", field)
	case "min":
		return fmt.Sprintf("%s deve conter pelo menos %s caracteres.", lengthSubject(field), fe.Param())
	case "max":
		return fmt.Sprintf("%s deve conter no máximo %s caracteres.", lengthSubject(field), fe.Param())
	case "email":
		return "Formato de e-mail inválido."
	case "uuid":
		return fmt.Sprintf("O campo %s deve ser um UUID válido.", field)
	case "oneof":
		return fmt.Sprintf("O campo %s deve ser um de: %s.", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("O campo %s é inválido.", field)
	}
}

func lengthSubject(field string) string {
	if subject, ok := lengthSubjects[field]; ok {
		return subject
	}
	return "O campo " + field
}

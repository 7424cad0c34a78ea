package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report validation failures under the json field name, not the Go one.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// Fields writes a per-field error map: {"campo": "mensaje"}.
func Fields(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, fields)
}

// Binding turns a ShouldBindJSON error into the per-field error map and
// writes it. Non-validator errors become a single body-level entry.
func Binding(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		Fields(c, map[string]string{"non_field_errors": "Datos inválidos."})
		return
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	Fields(c, fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es requerido."
	case "email":
		return "Correo electrónico inválido."
	case "gt":
		return fmt.Sprintf("Debe ser mayor que %s.", fe.Param())
	case "min":
		return fmt.Sprintf("Debe tener al menos %s caracteres.", fe.Param())
	case "max":
		return fmt.Sprintf("No debe exceder %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Valor inválido, opciones: %s.", fe.Param())
	case "eqfield":
		return "Los valores no coinciden."
	}
	return "Valor inválido."
}

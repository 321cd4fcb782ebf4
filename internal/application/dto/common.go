package dto

import (
	"time"

	"github.com/tu-usuario/gestor-comercial/internal/domain"
)

// TimeLayout formato fijo de fechas en las respuestas de la API.
const TimeLayout = "2006-01-02 15:04:05"

// FormatTime renderiza un timestamp con el formato fijo de la API.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ErrorResponse cuerpo de error uniforme de la API.
// Fields solo viene en errores de validación (422).
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// DeletedResponse confirmación de un borrado.
type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

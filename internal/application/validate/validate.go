package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestor-comercial/internal/domain"
	"github.com/tu-usuario/gestor-comercial/pkg/cnpj"
)

var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Los validadores son predicados puros: cada falla agrega un FieldError a la lista
// y ninguno corta la evaluación de los siguientes.

// Required exige un texto no vacío (espacios no cuentan).
func Required(errs []domain.FieldError, field, value string) []domain.FieldError {
	if strings.TrimSpace(value) == "" {
		return append(errs, domain.FieldError{Field: field, Message: "es requerido"})
	}
	return errs
}

// MinLen exige un largo mínimo.
func MinLen(errs []domain.FieldError, field, value string, n int) []domain.FieldError {
	if len(value) < n {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("debe tener al menos %d caracteres", n)})
	}
	return errs
}

// Email exige formato RFC básico de correo.
func Email(errs []domain.FieldError, field, value string) []domain.FieldError {
	if !reEmail.MatchString(strings.TrimSpace(value)) {
		return append(errs, domain.FieldError{Field: field, Message: "formato de email inválido"})
	}
	return errs
}

// CNPJ exige 14 dígitos tras normalizar. Si optional es true, el vacío pasa.
func CNPJ(errs []domain.FieldError, field, value string, optional bool) []domain.FieldError {
	if value == "" && optional {
		return errs
	}
	if !cnpj.IsValid(value) {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("debe tener %d dígitos", cnpj.Length)})
	}
	return errs
}

// PositiveDecimal exige valor > 0.
func PositiveDecimal(errs []domain.FieldError, field string, value decimal.Decimal) []domain.FieldError {
	if !value.IsPositive() {
		return append(errs, domain.FieldError{Field: field, Message: "debe ser mayor que cero"})
	}
	return errs
}

// NonNegativeDecimal exige valor >= 0.
func NonNegativeDecimal(errs []domain.FieldError, field string, value decimal.Decimal) []domain.FieldError {
	if value.IsNegative() {
		return append(errs, domain.FieldError{Field: field, Message: "no puede ser negativo"})
	}
	return errs
}

// PositiveInt exige valor > 0.
func PositiveInt(errs []domain.FieldError, field string, value int64) []domain.FieldError {
	if value <= 0 {
		return append(errs, domain.FieldError{Field: field, Message: "debe ser mayor que cero"})
	}
	return errs
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrUnauthenticated    = errors.New("no autenticado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("email o contraseña inválidos")
	ErrInvalidCompany     = errors.New("empresa inválida")
	ErrInvalidCategory    = errors.New("categoría inválida")
	ErrInvalidProduct     = errors.New("producto inválido")
	ErrInvalidSupplier    = errors.New("proveedor inválido")
	ErrInvalidCustomer    = errors.New("cliente inválido")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrNoItemsFound       = errors.New("la orden no tiene items registrados")
)

// FieldError describe una falla de validación sobre un campo puntual.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa todas las fallas de validación de una petición.
// Los validadores corren completos: el error lleva la lista entera, nunca solo la primera.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError construye el error con la lista de fallas, o nil si no hay ninguna.
func NewValidationError(fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "entrada inválida: " + strings.Join(parts, "; ")
}

// Is hace que errors.Is(err, ErrInvalidInput) funcione para el error agrupado.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

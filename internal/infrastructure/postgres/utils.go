package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isInvalidUUID verifica si un error es de sintaxis inválida (22P02), que el
// servidor devuelve cuando un parámetro uuid llega malformado. Las búsquedas
// por id lo tratan como "sin fila": un id que no parsea no identifica nada.
func isInvalidUUID(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "22P02" // invalid_text_representation
	}
	return false
}

// uuidOrNil convierte "" en NULL para parámetros uuid opcionales: un string
// vacío no es un literal uuid válido y el servidor lo rechazaría.
func uuidOrNil(id string) any {
	if id == "" {
		return nil
	}
	return id
}

package cnpj

import "unicode"

// Length cantidad de dígitos de un CNPJ de persona jurídica (Receita Federal, Brasil).
const Length = 14

// Normalize elimina puntos, barras y guiones del CNPJ y devuelve solo los dígitos.
// "12.345.678/0001-99" -> "12345678000199".
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// IsValid indica si el CNPJ normalizado tiene exactamente 14 dígitos.
func IsValid(s string) bool {
	return len(Normalize(s)) == Length
}

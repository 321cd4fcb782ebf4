package cnpj_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/gestor-comercial/pkg/cnpj"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "12345678000199", cnpj.Normalize("12.345.678/0001-99"))
	assert.Equal(t, "12345678000199", cnpj.Normalize("12345678000199"))
	assert.Equal(t, "", cnpj.Normalize("  .-/  "))
}

func TestIsValid(t *testing.T) {
	assert.True(t, cnpj.IsValid("12.345.678/0001-99"))
	assert.True(t, cnpj.IsValid("12345678000199"))
	assert.False(t, cnpj.IsValid("123"), "menos de 14 dígitos")
	assert.False(t, cnpj.IsValid("123456780001990"), "más de 14 dígitos")
	assert.False(t, cnpj.IsValid("12345678000a99"), "letras mezcladas")
	assert.False(t, cnpj.IsValid(""), "vacío")
}

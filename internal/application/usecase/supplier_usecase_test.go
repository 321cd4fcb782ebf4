package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestor-comercial/internal/application/dto"
	"github.com/tu-usuario/gestor-comercial/internal/application/scope"
	"github.com/tu-usuario/gestor-comercial/internal/application/shape"
	"github.com/tu-usuario/gestor-comercial/internal/application/usecase"
	"github.com/tu-usuario/gestor-comercial/internal/domain"
)

func newSupplierUC() (*usecase.SupplierUseCase, *memSuppliers) {
	users := newMemUsers()
	companies := newMemCompanies()
	suppliers := newMemSuppliers()
	seedOwnerAndCompanies(users, companies)
	gate := scope.NewGate(companies)
	shaper := shape.New(users, newMemCategories(), newMemProducts())
	return usecase.NewSupplierUseCase(suppliers, gate, shaper), suppliers
}

func validSupplierInput() dto.SupplierInput {
	return dto.SupplierInput{
		Name:      "Proveedor Uno",
		CNPJ:      "12.345.678/0001-99",
		Email:     "prov@example.com",
		Cellphone: "11999990000",
		Address:   "Rua A, 100",
		City:      "São Paulo",
		State:     "SP",
		CompanyID: companyID,
	}
}

// El CNPJ con puntuación se normaliza a solo dígitos antes de guardarse.
func TestSupplierCreate_NormalizaCNPJ(t *testing.T) {
	uc, suppliers := newSupplierUC()

	out, err := uc.Create(context.Background(), ownerID, validSupplierInput())
	require.NoError(t, err)
	assert.Equal(t, "12345678000199", out.CNPJ)

	stored := suppliers.items[out.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "12345678000199", stored.CNPJ)
}

// Dos proveedores con el mismo CNPJ en la misma empresa: el segundo falla.
func TestSupplierCreate_CNPJDuplicadoMismaEmpresa(t *testing.T) {
	uc, _ := newSupplierUC()

	_, err := uc.Create(context.Background(), ownerID, validSupplierInput())
	require.NoError(t, err)

	in := validSupplierInput()
	in.Name = "Otro Proveedor"
	_, err = uc.Create(context.Background(), ownerID, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// La unicidad del CNPJ es por empresa: el mismo CNPJ bajo dos empresas
// distintas crea ambos proveedores sin conflicto.
func TestSupplierCreate_CNPJIgualEnOtraEmpresa(t *testing.T) {
	uc, suppliers := newSupplierUC()

	_, err := uc.Create(context.Background(), ownerID, validSupplierInput())
	require.NoError(t, err)

	in := validSupplierInput()
	in.Name = "Proveedor Dos"
	in.CompanyID = otherCompanyID
	out, err := uc.Create(context.Background(), otherOwnerID, in)
	require.NoError(t, err)
	assert.Equal(t, "12345678000199", out.CNPJ)
	assert.Len(t, suppliers.items, 2)
}

// El CNPJ es opcional: dos proveedores sin CNPJ conviven sin conflicto.
func TestSupplierCreate_SinCNPJ(t *testing.T) {
	uc, _ := newSupplierUC()

	in := validSupplierInput()
	in.CNPJ = ""
	_, err := uc.Create(context.Background(), ownerID, in)
	require.NoError(t, err)

	in.Name = "Otro"
	_, err = uc.Create(context.Background(), ownerID, in)
	assert.NoError(t, err)
}

// Un CNPJ malformado falla la validación con el campo señalado.
func TestSupplierCreate_CNPJInvalido(t *testing.T) {
	uc, _ := newSupplierUC()

	in := validSupplierInput()
	in.CNPJ = "123"
	_, err := uc.Create(context.Background(), ownerID, in)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "cnpj", verr.Fields[0].Field)
}

// Todos los chequeos corren: una entrada vacía reporta cada campo que falló.
func TestSupplierCreate_ReportaTodosLosCampos(t *testing.T) {
	uc, _ := newSupplierUC()

	_, err := uc.Create(context.Background(), ownerID, dto.SupplierInput{CompanyID: companyID})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.GreaterOrEqual(t, len(verr.Fields), 6)
}

// La empresa de otro dueño es invisible, aunque el id exista.
func TestSupplierCreate_EmpresaAjena(t *testing.T) {
	uc, _ := newSupplierUC()

	in := validSupplierInput()
	in.CompanyID = otherCompanyID
	_, err := uc.Create(context.Background(), ownerID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidCompany)
}

// En la actualización el propio registro no cuenta como duplicado.
func TestSupplierUpdate_ExcluyeElPropioID(t *testing.T) {
	uc, _ := newSupplierUC()

	created, err := uc.Create(context.Background(), ownerID, validSupplierInput())
	require.NoError(t, err)

	in := validSupplierInput()
	in.Name = "Proveedor Renombrado"
	out, err := uc.Update(context.Background(), ownerID, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Proveedor Renombrado", out.Name)
}

func TestSupplierUpdate_NoExiste(t *testing.T) {
	uc, _ := newSupplierUC()
	_, err := uc.Update(context.Background(), ownerID, "no-existe", validSupplierInput())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSupplierList_AcotadaPorEmpresa(t *testing.T) {
	uc, _ := newSupplierUC()

	_, err := uc.Create(context.Background(), ownerID, validSupplierInput())
	require.NoError(t, err)

	list, err := uc.List(context.Background(), ownerID, companyID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Company)
	assert.Equal(t, companyID, list[0].Company.ID)
}

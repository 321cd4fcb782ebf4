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

func newCustomerUC() (*usecase.CustomerUseCase, *memCustomers) {
	users := newMemUsers()
	companies := newMemCompanies()
	customers := newMemCustomers()
	seedOwnerAndCompanies(users, companies)
	gate := scope.NewGate(companies)
	shaper := shape.New(users, newMemCategories(), newMemProducts())
	return usecase.NewCustomerUseCase(customers, gate, shaper), customers
}

func validCustomerInput() dto.CustomerInput {
	return dto.CustomerInput{
		Name:      "Cliente Uno",
		Email:     "cliente@example.com",
		Cellphone: "11988880000",
		CompanyID: companyID,
	}
}

func TestCustomerCreate_ResuelveEmpresa(t *testing.T) {
	uc, customers := newCustomerUC()

	out, err := uc.Create(context.Background(), ownerID, validCustomerInput())
	require.NoError(t, err)
	require.NotNil(t, out.Company)
	assert.Equal(t, companyID, out.Company.ID)
	assert.NotNil(t, customers.items[out.ID])
}

// Todos los chequeos corren: una entrada vacía reporta cada campo que falló.
func TestCustomerCreate_ReportaTodosLosCampos(t *testing.T) {
	uc, _ := newCustomerUC()

	_, err := uc.Create(context.Background(), ownerID, dto.CustomerInput{CompanyID: companyID})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.GreaterOrEqual(t, len(verr.Fields), 3)
}

func TestCustomerCreate_EmpresaAjena(t *testing.T) {
	uc, _ := newCustomerUC()

	in := validCustomerInput()
	in.CompanyID = otherCompanyID
	_, err := uc.Create(context.Background(), ownerID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidCompany)
}

func TestCustomerUpdate_SobrescribeCamposYAvanzaTimestamp(t *testing.T) {
	uc, customers := newCustomerUC()

	created, err := uc.Create(context.Background(), ownerID, validCustomerInput())
	require.NoError(t, err)
	createdAt := customers.items[created.ID].CreatedAt
	updatedAt := customers.items[created.ID].UpdatedAt

	in := validCustomerInput()
	in.Name = "Cliente Renombrado"
	in.Cellphone = "11977770000"
	out, err := uc.Update(context.Background(), ownerID, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Cliente Renombrado", out.Name)

	stored := customers.items[created.ID]
	assert.Equal(t, "11977770000", stored.Cellphone)
	assert.True(t, stored.CreatedAt.Equal(createdAt), "createdAt no cambia al actualizar")
	assert.True(t, stored.UpdatedAt.After(updatedAt), "updatedAt avanza al actualizar")
}

func TestCustomerUpdate_NoExiste(t *testing.T) {
	uc, _ := newCustomerUC()
	_, err := uc.Update(context.Background(), ownerID, "no-existe", validCustomerInput())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerDelete_EliminaDeSuEmpresa(t *testing.T) {
	uc, customers := newCustomerUC()

	created, err := uc.Create(context.Background(), ownerID, validCustomerInput())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), ownerID, created.ID, companyID))
	assert.Empty(t, customers.items)
}

func TestCustomerGet_DeOtraEmpresaNoExiste(t *testing.T) {
	uc, _ := newCustomerUC()

	created, err := uc.Create(context.Background(), ownerID, validCustomerInput())
	require.NoError(t, err)

	_, err = uc.Get(context.Background(), ownerID, created.ID, companyID)
	require.NoError(t, err)
	_, err = uc.Get(context.Background(), otherOwnerID, created.ID, companyID)
	assert.ErrorIs(t, err, domain.ErrInvalidCompany)
}

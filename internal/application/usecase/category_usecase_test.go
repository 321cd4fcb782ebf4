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

func newCategoryUC() (*usecase.CategoryUseCase, *memCategories) {
	users := newMemUsers()
	companies := newMemCompanies()
	categories := newMemCategories()
	seedOwnerAndCompanies(users, companies)
	gate := scope.NewGate(companies)
	shaper := shape.New(users, categories, newMemProducts())
	return usecase.NewCategoryUseCase(categories, gate, shaper), categories
}

func TestCategoryCreate_ResuelveEmpresa(t *testing.T) {
	uc, categories := newCategoryUC()

	out, err := uc.Create(context.Background(), ownerID, dto.CategoryInput{Name: "Bebidas", CompanyID: companyID})
	require.NoError(t, err)
	require.NotNil(t, out.Company)
	assert.Equal(t, companyID, out.Company.ID)
	assert.NotNil(t, categories.items[out.ID])
}

func TestCategoryCreate_NombreVacio(t *testing.T) {
	uc, _ := newCategoryUC()

	_, err := uc.Create(context.Background(), ownerID, dto.CategoryInput{CompanyID: companyID})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "name", verr.Fields[0].Field)
}

func TestCategoryCreate_EmpresaAjena(t *testing.T) {
	uc, _ := newCategoryUC()

	_, err := uc.Create(context.Background(), ownerID, dto.CategoryInput{Name: "Bebidas", CompanyID: otherCompanyID})
	assert.ErrorIs(t, err, domain.ErrInvalidCompany)
}

func TestCategoryUpdate_RenombraYAvanzaTimestamp(t *testing.T) {
	uc, categories := newCategoryUC()

	created, err := uc.Create(context.Background(), ownerID, dto.CategoryInput{Name: "Bebidas", CompanyID: companyID})
	require.NoError(t, err)
	createdAt := categories.items[created.ID].CreatedAt
	updatedAt := categories.items[created.ID].UpdatedAt

	out, err := uc.Update(context.Background(), ownerID, created.ID, dto.CategoryInput{Name: "Bebidas Frías", CompanyID: companyID})
	require.NoError(t, err)
	assert.Equal(t, "Bebidas Frías", out.Name)

	stored := categories.items[created.ID]
	assert.True(t, stored.CreatedAt.Equal(createdAt), "createdAt no cambia al actualizar")
	assert.True(t, stored.UpdatedAt.After(updatedAt), "updatedAt avanza al actualizar")
}

func TestCategoryUpdate_NoExiste(t *testing.T) {
	uc, _ := newCategoryUC()
	_, err := uc.Update(context.Background(), ownerID, "no-existe", dto.CategoryInput{Name: "Bebidas", CompanyID: companyID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryDelete_EliminaDeSuEmpresa(t *testing.T) {
	uc, categories := newCategoryUC()

	created, err := uc.Create(context.Background(), ownerID, dto.CategoryInput{Name: "Bebidas", CompanyID: companyID})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), ownerID, created.ID, companyID))
	assert.Empty(t, categories.items)
}

func TestCategoryList_AcotadaPorEmpresa(t *testing.T) {
	uc, _ := newCategoryUC()

	_, err := uc.Create(context.Background(), ownerID, dto.CategoryInput{Name: "Bebidas", CompanyID: companyID})
	require.NoError(t, err)

	list, err := uc.List(context.Background(), ownerID, companyID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Bebidas", list[0].Name)

	// Para otro dueño la empresa es invisible, no una lista vacía.
	_, err = uc.List(context.Background(), otherOwnerID, companyID)
	assert.ErrorIs(t, err, domain.ErrInvalidCompany)
}

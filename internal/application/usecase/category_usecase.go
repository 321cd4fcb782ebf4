package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestor-comercial/internal/application/dto"
	"github.com/tu-usuario/gestor-comercial/internal/application/scope"
	"github.com/tu-usuario/gestor-comercial/internal/application/shape"
	"github.com/tu-usuario/gestor-comercial/internal/application/validate"
	"github.com/tu-usuario/gestor-comercial/internal/domain"
	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
	"github.com/tu-usuario/gestor-comercial/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías acotado por empresa.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	gate       *scope.Gate
	shaper     *shape.Shaper
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, gate *scope.Gate, shaper *shape.Shaper) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, gate: gate, shaper: shaper}
}

// Create crea una categoría bajo la empresa autorizada.
func (uc *CategoryUseCase) Create(ctx context.Context, userID string, in dto.CategoryInput) (*dto.CategoryResponse, error) {
	company, err := uc.gate.Company(ctx, userID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if errs := validate.Category(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CompanyID: company.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return uc.shaper.Category(ctx, category, company)
}

// Update reemplaza los campos de la categoría en bloque.
func (uc *CategoryUseCase) Update(ctx context.Context, userID, id string, in dto.CategoryInput) (*dto.CategoryResponse, error) {
	company, err := uc.gate.Company(ctx, userID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if errs := validate.Category(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	category, err := uc.categories.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	category.Name = in.Name
	category.UpdatedAt = time.Now()
	if err := uc.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return uc.shaper.Category(ctx, category, company)
}

// Delete elimina una categoría de la empresa autorizada. Sus productos caen en cascada.
func (uc *CategoryUseCase) Delete(ctx context.Context, userID, id, companyID string) error {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return err
	}
	category, err := uc.categories.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.categories.Delete(ctx, category.ID)
}

// List devuelve las categorías de la empresa.
func (uc *CategoryUseCase) List(ctx context.Context, userID, companyID string) ([]*dto.CategoryResponse, error) {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categories.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		shaped, err := uc.shaper.Category(ctx, c, company)
		if err != nil {
			return nil, err
		}
		out = append(out, shaped)
	}
	return out, nil
}

// Get devuelve una categoría de la empresa autorizada.
func (uc *CategoryUseCase) Get(ctx context.Context, userID, id, companyID string) (*dto.CategoryResponse, error) {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}
	category, err := uc.categories.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return uc.shaper.Category(ctx, category, company)
}

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

// ProductUseCase CRUD de productos acotado por empresa. Además de la empresa,
// la categoría referenciada se autoriza contra la misma empresa: el invariante
// category.companyId == product.companyId se chequea en cada escritura.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	gate       *scope.Gate
	shaper     *shape.Shaper
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	gate *scope.Gate,
	shaper *shape.Shaper,
) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, gate: gate, shaper: shaper}
}

// authorizeCategory verifica que la categoría exista bajo la empresa autorizada.
func (uc *ProductUseCase) authorizeCategory(ctx context.Context, categoryID, companyID string) (*entity.Category, error) {
	category, err := uc.categories.GetByIDAndCompany(ctx, categoryID, companyID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrInvalidCategory
	}
	return category, nil
}

// Create crea un producto bajo la empresa autorizada, validando la categoría.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.ProductInput) (*dto.ProductResponse, error) {
	company, err := uc.gate.Company(ctx, userID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if errs := validate.Product(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	category, err := uc.authorizeCategory(ctx, in.CategoryID, company.ID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Price:      in.Price,
		Code:       in.Code,
		ImageURL:   in.ImageURL,
		Highlight:  in.Highlight,
		CategoryID: category.ID,
		CompanyID:  company.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return uc.shaper.Product(ctx, product, company)
}

// Update reemplaza los campos del producto en bloque, revalidando la categoría.
func (uc *ProductUseCase) Update(ctx context.Context, userID, id string, in dto.ProductInput) (*dto.ProductResponse, error) {
	company, err := uc.gate.Company(ctx, userID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if errs := validate.Product(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	category, err := uc.authorizeCategory(ctx, in.CategoryID, company.ID)
	if err != nil {
		return nil, err
	}
	product, err := uc.products.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.Price = in.Price
	product.Code = in.Code
	product.ImageURL = in.ImageURL
	product.Highlight = in.Highlight
	product.CategoryID = category.ID
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return uc.shaper.Product(ctx, product, company)
}

// Delete elimina un producto de la empresa autorizada.
func (uc *ProductUseCase) Delete(ctx context.Context, userID, id, companyID string) error {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return err
	}
	product, err := uc.products.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.products.Delete(ctx, product.ID)
}

// List devuelve los productos de la empresa.
func (uc *ProductUseCase) List(ctx context.Context, userID, companyID string) ([]*dto.ProductResponse, error) {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		shaped, err := uc.shaper.Product(ctx, p, company)
		if err != nil {
			return nil, err
		}
		out = append(out, shaped)
	}
	return out, nil
}

// Get devuelve un producto de la empresa autorizada.
func (uc *ProductUseCase) Get(ctx context.Context, userID, id, companyID string) (*dto.ProductResponse, error) {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}
	product, err := uc.products.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.shaper.Product(ctx, product, company)
}

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
	"github.com/tu-usuario/gestor-comercial/pkg/cnpj"
)

// SupplierUseCase CRUD de proveedores acotado por empresa. El CNPJ es opcional
// y, cuando está presente, único dentro de la empresa.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
	gate      *scope.Gate
	shaper    *shape.Shaper
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(suppliers repository.SupplierRepository, gate *scope.Gate, shaper *shape.Shaper) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, gate: gate, shaper: shaper}
}

// Create crea un proveedor bajo la empresa autorizada.
func (uc *SupplierUseCase) Create(ctx context.Context, userID string, in dto.SupplierInput) (*dto.SupplierResponse, error) {
	company, err := uc.gate.Company(ctx, userID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if errs := validate.Supplier(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	normalized := cnpj.Normalize(in.CNPJ)
	if normalized != "" {
		existing, err := uc.suppliers.GetByCNPJAndCompany(ctx, normalized, company.ID, "")
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CNPJ:      normalized,
		Email:     in.Email,
		Cellphone: in.Cellphone,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		Landmark:  in.Landmark,
		Note:      in.Note,
		CompanyID: company.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.suppliers.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return uc.shaper.Supplier(ctx, supplier, company)
}

// Update reemplaza los campos del proveedor en bloque.
func (uc *SupplierUseCase) Update(ctx context.Context, userID, id string, in dto.SupplierInput) (*dto.SupplierResponse, error) {
	company, err := uc.gate.Company(ctx, userID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if errs := validate.Supplier(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	supplier, err := uc.suppliers.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	normalized := cnpj.Normalize(in.CNPJ)
	if normalized != "" {
		existing, err := uc.suppliers.GetByCNPJAndCompany(ctx, normalized, company.ID, supplier.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	supplier.Name = in.Name
	supplier.CNPJ = normalized
	supplier.Email = in.Email
	supplier.Cellphone = in.Cellphone
	supplier.Address = in.Address
	supplier.City = in.City
	supplier.State = in.State
	supplier.Landmark = in.Landmark
	supplier.Note = in.Note
	supplier.UpdatedAt = time.Now()
	if err := uc.suppliers.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return uc.shaper.Supplier(ctx, supplier, company)
}

// Delete elimina un proveedor de la empresa autorizada.
func (uc *SupplierUseCase) Delete(ctx context.Context, userID, id, companyID string) error {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return err
	}
	supplier, err := uc.suppliers.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.suppliers.Delete(ctx, supplier.ID)
}

// List devuelve los proveedores de la empresa, cada uno con su grafo resuelto.
func (uc *SupplierUseCase) List(ctx context.Context, userID, companyID string) ([]*dto.SupplierResponse, error) {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}
	suppliers, err := uc.suppliers.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		shaped, err := uc.shaper.Supplier(ctx, s, company)
		if err != nil {
			return nil, err
		}
		out = append(out, shaped)
	}
	return out, nil
}

// Get devuelve un proveedor de la empresa autorizada.
func (uc *SupplierUseCase) Get(ctx context.Context, userID, id, companyID string) (*dto.SupplierResponse, error) {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}
	supplier, err := uc.suppliers.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return uc.shaper.Supplier(ctx, supplier, company)
}

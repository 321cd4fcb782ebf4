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

// CompanyUseCase CRUD de empresas. El CNPJ se normaliza a dígitos y es único
// por usuario dueño.
type CompanyUseCase struct {
	companies repository.CompanyRepository
	gate      *scope.Gate
	shaper    *shape.Shaper
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companies repository.CompanyRepository, gate *scope.Gate, shaper *shape.Shaper) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, gate: gate, shaper: shaper}
}

// Create crea la empresa del usuario autenticado.
func (uc *CompanyUseCase) Create(ctx context.Context, userID string, in dto.CompanyInput) (*dto.CompanyResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if errs := validate.Company(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	normalized := cnpj.Normalize(in.CNPJ)
	existing, err := uc.companies.GetByCNPJAndOwner(ctx, normalized, userID, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	company := &entity.Company{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Trade:       in.Trade,
		CNPJ:        normalized,
		OwnerUserID: userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return uc.shaper.Company(ctx, company)
}

// Update reemplaza los campos mutables de la empresa en bloque.
func (uc *CompanyUseCase) Update(ctx context.Context, userID, id string, in dto.CompanyInput) (*dto.CompanyResponse, error) {
	company, err := uc.gate.Company(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if errs := validate.Company(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	normalized := cnpj.Normalize(in.CNPJ)
	existing, err := uc.companies.GetByCNPJAndOwner(ctx, normalized, userID, company.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	company.Name = in.Name
	company.Trade = in.Trade
	company.CNPJ = normalized
	company.UpdatedAt = time.Now()
	if err := uc.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return uc.shaper.Company(ctx, company)
}

// Delete elimina la empresa. El borrado cascadea a todas sus entidades.
func (uc *CompanyUseCase) Delete(ctx context.Context, userID, id string) error {
	company, err := uc.gate.Company(ctx, userID, id)
	if err != nil {
		return err
	}
	return uc.companies.Delete(ctx, company.ID)
}

// Get devuelve la empresa del usuario con su dueño resuelto.
func (uc *CompanyUseCase) Get(ctx context.Context, userID, id string) (*dto.CompanyResponse, error) {
	company, err := uc.gate.Company(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return uc.shaper.Company(ctx, company)
}

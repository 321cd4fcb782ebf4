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

// CustomerUseCase CRUD de clientes acotado por empresa.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	gate      *scope.Gate
	shaper    *shape.Shaper
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, gate *scope.Gate, shaper *shape.Shaper) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, gate: gate, shaper: shaper}
}

// Create crea un cliente bajo la empresa autorizada.
func (uc *CustomerUseCase) Create(ctx context.Context, userID string, in dto.CustomerInput) (*dto.CustomerResponse, error) {
	company, err := uc.gate.Company(ctx, userID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if errs := validate.Customer(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Cellphone: in.Cellphone,
		CompanyID: company.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return uc.shaper.Customer(ctx, customer, company)
}

// Update reemplaza los campos del cliente en bloque.
func (uc *CustomerUseCase) Update(ctx context.Context, userID, id string, in dto.CustomerInput) (*dto.CustomerResponse, error) {
	company, err := uc.gate.Company(ctx, userID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if errs := validate.Customer(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	customer, err := uc.customers.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.Name = in.Name
	customer.Email = in.Email
	customer.Cellphone = in.Cellphone
	customer.UpdatedAt = time.Now()
	if err := uc.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return uc.shaper.Customer(ctx, customer, company)
}

// Delete elimina un cliente de la empresa autorizada.
func (uc *CustomerUseCase) Delete(ctx context.Context, userID, id, companyID string) error {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return err
	}
	customer, err := uc.customers.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.customers.Delete(ctx, customer.ID)
}

// List devuelve los clientes de la empresa.
func (uc *CustomerUseCase) List(ctx context.Context, userID, companyID string) ([]*dto.CustomerResponse, error) {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}
	customers, err := uc.customers.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		shaped, err := uc.shaper.Customer(ctx, c, company)
		if err != nil {
			return nil, err
		}
		out = append(out, shaped)
	}
	return out, nil
}

// Get devuelve un cliente de la empresa autorizada.
func (uc *CustomerUseCase) Get(ctx context.Context, userID, id, companyID string) (*dto.CustomerResponse, error) {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customers.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return uc.shaper.Customer(ctx, customer, company)
}

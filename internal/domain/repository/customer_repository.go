package repository

import (
	"context"

	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
)

// CustomerRepository puerto de persistencia para clientes, acotado por empresa.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
	GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Customer, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Customer, error)
}

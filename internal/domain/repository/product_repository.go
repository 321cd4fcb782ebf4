package repository

import (
	"context"

	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos, acotado por empresa.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Product, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Product, error)
}

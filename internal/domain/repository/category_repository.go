package repository

import (
	"context"

	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
)

// CategoryRepository puerto de persistencia para categorías, acotado por empresa.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
	GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Category, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Category, error)
}

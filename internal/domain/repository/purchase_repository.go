package repository

import (
	"context"

	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
)

// PurchaseRepository puerto de persistencia para compras y sus items.
// Cabecera e items se escriben juntos dentro de una transacción (ver orders.TxRunner).
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	Update(ctx context.Context, purchase *entity.Purchase) error
	Delete(ctx context.Context, id string) error
	GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Purchase, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Purchase, error)

	CreateItem(ctx context.Context, item *entity.PurchaseItem) error
	ListItems(ctx context.Context, purchaseID string) ([]*entity.PurchaseItem, error)
	DeleteItems(ctx context.Context, purchaseID string) error
}

package repository

import (
	"context"

	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas y sus items.
// Cabecera e items se escriben juntos dentro de una transacción (ver orders.TxRunner).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id string) error
	GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Sale, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Sale, error)

	CreateItem(ctx context.Context, item *entity.SaleItem) error
	ListItems(ctx context.Context, saleID string) ([]*entity.SaleItem, error)
	DeleteItems(ctx context.Context, saleID string) error
}

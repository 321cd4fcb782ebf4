package repository

import (
	"context"

	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para proveedores, acotado por empresa.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id string) error
	GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Supplier, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Supplier, error)
	// GetByCNPJAndCompany busca otro proveedor de la empresa con ese CNPJ,
	// excluyendo excludeID (vacío en creación).
	GetByCNPJAndCompany(ctx context.Context, cnpj, companyID, excludeID string) (*entity.Supplier, error)
}

package repository

import (
	"context"

	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
)

// CompanyRepository puerto de persistencia para empresas.
// Las búsquedas van siempre acotadas por el usuario dueño.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id string) error
	GetByIDAndOwner(ctx context.Context, id, ownerUserID string) (*entity.Company, error)
	// GetByCNPJAndOwner busca otra empresa del mismo dueño con ese CNPJ,
	// excluyendo excludeID (vacío en creación).
	GetByCNPJAndOwner(ctx context.Context, cnpj, ownerUserID, excludeID string) (*entity.Company, error)
}

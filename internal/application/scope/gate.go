package scope

import (
	"context"

	"github.com/tu-usuario/gestor-comercial/internal/domain"
	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
	"github.com/tu-usuario/gestor-comercial/internal/domain/repository"
)

// Gate resuelve y autoriza la empresa del principal. Es el único camino de
// autorización: toda operación de negocio pasa por acá antes de tocar datos,
// y los lookups posteriores se acotan con el ID de la empresa devuelta,
// nunca con el que mandó el cliente.
type Gate struct {
	companies repository.CompanyRepository
}

// NewGate construye la puerta de autorización.
func NewGate(companies repository.CompanyRepository) *Gate {
	return &Gate{companies: companies}
}

// Company devuelve la empresa companyID si pertenece al usuario userID.
// Sin principal -> ErrUnauthenticated. Empresa inexistente o ajena -> ErrInvalidCompany
// (misma respuesta en ambos casos, para no filtrar existencia de empresas ajenas).
func (g *Gate) Company(ctx context.Context, userID, companyID string) (*entity.Company, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if companyID == "" {
		return nil, domain.ErrInvalidCompany
	}
	company, err := g.companies.GetByIDAndOwner(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrInvalidCompany
	}
	return company, nil
}

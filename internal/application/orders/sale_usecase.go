package orders

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

// SaleUseCase ventas con items. Misma secuencia que las compras; Value guarda
// el subtotal crudo de los items y Discount/Percentage pasan tal cual, sin
// combinarse con el total.
type SaleUseCase struct {
	tx         TxRunner
	sales      repository.SaleRepository
	customers  repository.CustomerRepository
	gate       *scope.Gate
	aggregator *Aggregator
	shaper     *shape.Shaper
}

// NewSaleUseCase construye el caso de uso. sales se usa para lecturas fuera de
// transacción; las escrituras pasan por tx.
func NewSaleUseCase(
	tx TxRunner,
	sales repository.SaleRepository,
	customers repository.CustomerRepository,
	gate *scope.Gate,
	aggregator *Aggregator,
	shaper *shape.Shaper,
) *SaleUseCase {
	return &SaleUseCase{
		tx:         tx,
		sales:      sales,
		customers:  customers,
		gate:       gate,
		aggregator: aggregator,
		shaper:     shaper,
	}
}

// authorizeCustomer verifica que el cliente exista bajo la empresa autorizada.
func (uc *SaleUseCase) authorizeCustomer(ctx context.Context, customerID, companyID string) (*entity.Customer, error) {
	customer, err := uc.customers.GetByIDAndCompany(ctx, customerID, companyID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrInvalidCustomer
	}
	return customer, nil
}

// Create registra una venta. Value es siempre el subtotal calculado por el agregador.
func (uc *SaleUseCase) Create(ctx context.Context, userID string, in dto.SaleInput) (*dto.SaleResponse, error) {
	company, err := uc.gate.Company(ctx, userID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if errs := validate.Sale(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	customer, err := uc.authorizeCustomer(ctx, in.CustomerID, company.ID)
	if err != nil {
		return nil, err
	}
	total, resolved, err := uc.aggregator.Total(ctx, company.ID, in.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:         uuid.New().String(),
		Value:      total,
		Discount:   in.Discount,
		Percentage: in.Percentage,
		Online:     in.Online,
		Disclosure: in.Disclosure,
		CustomerID: customer.ID,
		CompanyID:  company.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	items := buildSaleItems(sale.ID, resolved, now)

	err = uc.tx.RunSale(ctx, func(repo repository.SaleRepository) error {
		if err := repo.Create(ctx, sale); err != nil {
			return err
		}
		for _, item := range items {
			if err := repo.CreateItem(ctx, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.shaper.Sale(ctx, sale, customer, company, items)
}

// Update reemplaza el set completo de items y recalcula Value con los nuevos.
// Una venta sin items registrados no se puede actualizar (ErrNoItemsFound).
func (uc *SaleUseCase) Update(ctx context.Context, userID, id string, in dto.SaleInput) (*dto.SaleResponse, error) {
	company, err := uc.gate.Company(ctx, userID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if errs := validate.Sale(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	customer, err := uc.authorizeCustomer(ctx, in.CustomerID, company.ID)
	if err != nil {
		return nil, err
	}
	sale, err := uc.sales.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.sales.ListItems(ctx, sale.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, domain.ErrNoItemsFound
	}
	total, resolved, err := uc.aggregator.Total(ctx, company.ID, in.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale.Value = total
	sale.Discount = in.Discount
	sale.Percentage = in.Percentage
	sale.Online = in.Online
	sale.Disclosure = in.Disclosure
	sale.CustomerID = customer.ID
	sale.UpdatedAt = now
	items := buildSaleItems(sale.ID, resolved, now)

	err = uc.tx.RunSale(ctx, func(repo repository.SaleRepository) error {
		if err := repo.DeleteItems(ctx, sale.ID); err != nil {
			return err
		}
		for _, item := range items {
			if err := repo.CreateItem(ctx, item); err != nil {
				return err
			}
		}
		return repo.Update(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return uc.shaper.Sale(ctx, sale, customer, company, items)
}

// Delete elimina la venta. Sus items caen en cascada con la cabecera.
func (uc *SaleUseCase) Delete(ctx context.Context, userID, id, companyID string) error {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return err
	}
	sale, err := uc.sales.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.sales.Delete(ctx, sale.ID)
}

// List devuelve las ventas de la empresa, cada una con su grafo completo.
func (uc *SaleUseCase) List(ctx context.Context, userID, companyID string) ([]*dto.SaleResponse, error) {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}
	sales, err := uc.sales.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		shaped, err := uc.shapeOne(ctx, s, company)
		if err != nil {
			return nil, err
		}
		out = append(out, shaped)
	}
	return out, nil
}

// Get devuelve una venta de la empresa autorizada.
func (uc *SaleUseCase) Get(ctx context.Context, userID, id, companyID string) (*dto.SaleResponse, error) {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}
	sale, err := uc.sales.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return uc.shapeOne(ctx, sale, company)
}

func (uc *SaleUseCase) shapeOne(ctx context.Context, sale *entity.Sale, company *entity.Company) (*dto.SaleResponse, error) {
	customer, err := uc.customers.GetByIDAndCompany(ctx, sale.CustomerID, company.ID)
	if err != nil {
		return nil, err
	}
	items, err := uc.sales.ListItems(ctx, sale.ID)
	if err != nil {
		return nil, err
	}
	return uc.shaper.Sale(ctx, sale, customer, company, items)
}

func buildSaleItems(saleID string, resolved []ResolvedItem, now time.Time) []*entity.SaleItem {
	items := make([]*entity.SaleItem, 0, len(resolved))
	for _, r := range resolved {
		items = append(items, &entity.SaleItem{
			ID:        uuid.New().String(),
			Quantity:  r.Quantity,
			ProductID: r.Product.ID,
			SaleID:    saleID,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return items
}

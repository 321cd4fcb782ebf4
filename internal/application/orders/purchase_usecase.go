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

// PurchaseUseCase compras con items. La secuencia es siempre: autorizar empresa,
// validar entrada, autorizar proveedor, agregar total, y recién ahí escribir
// cabecera + items en una transacción.
type PurchaseUseCase struct {
	tx         TxRunner
	purchases  repository.PurchaseRepository
	suppliers  repository.SupplierRepository
	gate       *scope.Gate
	aggregator *Aggregator
	shaper     *shape.Shaper
}

// NewPurchaseUseCase construye el caso de uso. purchases se usa para lecturas
// fuera de transacción; las escrituras pasan por tx.
func NewPurchaseUseCase(
	tx TxRunner,
	purchases repository.PurchaseRepository,
	suppliers repository.SupplierRepository,
	gate *scope.Gate,
	aggregator *Aggregator,
	shaper *shape.Shaper,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		tx:         tx,
		purchases:  purchases,
		suppliers:  suppliers,
		gate:       gate,
		aggregator: aggregator,
		shaper:     shaper,
	}
}

// authorizeSupplier verifica que el proveedor exista bajo la empresa autorizada.
func (uc *PurchaseUseCase) authorizeSupplier(ctx context.Context, supplierID, companyID string) (*entity.Supplier, error) {
	supplier, err := uc.suppliers.GetByIDAndCompany(ctx, supplierID, companyID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrInvalidSupplier
	}
	return supplier, nil
}

// Create registra una compra. Value es siempre el total calculado por el agregador.
func (uc *PurchaseUseCase) Create(ctx context.Context, userID string, in dto.PurchaseInput) (*dto.PurchaseResponse, error) {
	company, err := uc.gate.Company(ctx, userID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if errs := validate.Purchase(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	supplier, err := uc.authorizeSupplier(ctx, in.SupplierID, company.ID)
	if err != nil {
		return nil, err
	}
	total, resolved, err := uc.aggregator.Total(ctx, company.ID, in.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:         uuid.New().String(),
		Value:      total,
		SupplierID: supplier.ID,
		CompanyID:  company.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	items := buildPurchaseItems(purchase.ID, resolved, now)

	err = uc.tx.RunPurchase(ctx, func(repo repository.PurchaseRepository) error {
		if err := repo.Create(ctx, purchase); err != nil {
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
	return uc.shaper.Purchase(ctx, purchase, supplier, company, items)
}

// Update reemplaza el set completo de items y recalcula Value con los nuevos.
// Una compra sin items registrados no se puede actualizar (ErrNoItemsFound).
func (uc *PurchaseUseCase) Update(ctx context.Context, userID, id string, in dto.PurchaseInput) (*dto.PurchaseResponse, error) {
	company, err := uc.gate.Company(ctx, userID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if errs := validate.Purchase(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	supplier, err := uc.authorizeSupplier(ctx, in.SupplierID, company.ID)
	if err != nil {
		return nil, err
	}
	purchase, err := uc.purchases.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.purchases.ListItems(ctx, purchase.ID)
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
	purchase.Value = total
	purchase.SupplierID = supplier.ID
	purchase.UpdatedAt = now
	items := buildPurchaseItems(purchase.ID, resolved, now)

	err = uc.tx.RunPurchase(ctx, func(repo repository.PurchaseRepository) error {
		if err := repo.DeleteItems(ctx, purchase.ID); err != nil {
			return err
		}
		for _, item := range items {
			if err := repo.CreateItem(ctx, item); err != nil {
				return err
			}
		}
		return repo.Update(ctx, purchase)
	})
	if err != nil {
		return nil, err
	}
	return uc.shaper.Purchase(ctx, purchase, supplier, company, items)
}

// Delete elimina la compra. Sus items caen en cascada con la cabecera.
func (uc *PurchaseUseCase) Delete(ctx context.Context, userID, id, companyID string) error {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return err
	}
	purchase, err := uc.purchases.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return err
	}
	if purchase == nil {
		return domain.ErrNotFound
	}
	return uc.purchases.Delete(ctx, purchase.ID)
}

// List devuelve las compras de la empresa, cada una con su grafo completo.
func (uc *PurchaseUseCase) List(ctx context.Context, userID, companyID string) ([]*dto.PurchaseResponse, error) {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}
	purchases, err := uc.purchases.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		shaped, err := uc.shapeOne(ctx, p, company)
		if err != nil {
			return nil, err
		}
		out = append(out, shaped)
	}
	return out, nil
}

// Get devuelve una compra de la empresa autorizada.
func (uc *PurchaseUseCase) Get(ctx context.Context, userID, id, companyID string) (*dto.PurchaseResponse, error) {
	company, err := uc.gate.Company(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}
	purchase, err := uc.purchases.GetByIDAndCompany(ctx, id, company.ID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	return uc.shapeOne(ctx, purchase, company)
}

func (uc *PurchaseUseCase) shapeOne(ctx context.Context, purchase *entity.Purchase, company *entity.Company) (*dto.PurchaseResponse, error) {
	supplier, err := uc.suppliers.GetByIDAndCompany(ctx, purchase.SupplierID, company.ID)
	if err != nil {
		return nil, err
	}
	items, err := uc.purchases.ListItems(ctx, purchase.ID)
	if err != nil {
		return nil, err
	}
	return uc.shaper.Purchase(ctx, purchase, supplier, company, items)
}

func buildPurchaseItems(purchaseID string, resolved []ResolvedItem, now time.Time) []*entity.PurchaseItem {
	items := make([]*entity.PurchaseItem, 0, len(resolved))
	for _, r := range resolved {
		items = append(items, &entity.PurchaseItem{
			ID:         uuid.New().String(),
			Quantity:   r.Quantity,
			ProductID:  r.Product.ID,
			PurchaseID: purchaseID,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	return items
}

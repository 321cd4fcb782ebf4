package orders

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestor-comercial/internal/application/dto"
	"github.com/tu-usuario/gestor-comercial/internal/domain"
	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
	"github.com/tu-usuario/gestor-comercial/internal/domain/repository"
)

// ResolvedItem línea de orden con su producto ya resuelto y autorizado.
type ResolvedItem struct {
	Product  *entity.Product
	Quantity int64
}

// Aggregator calcula el total de una orden. Cada línea se valida de forma
// independiente y concurrente contra la empresa; el total solo se lee después
// de que TODAS las búsquedas terminaron, y si alguna línea falló el error
// lleva la lista completa de fallas, no solo la primera.
type Aggregator struct {
	products repository.ProductRepository
}

// NewAggregator construye el agregador.
func NewAggregator(products repository.ProductRepository) *Aggregator {
	return &Aggregator{products: products}
}

type itemResult struct {
	product   *entity.Product
	fieldErrs []domain.FieldError
	err       error
}

// Total resuelve cada producto acotado por companyID, valida las cantidades y
// devuelve Σ precio × cantidad junto con las líneas resueltas, en el orden de entrada.
func (a *Aggregator) Total(ctx context.Context, companyID string, items []dto.OrderItemInput) (decimal.Decimal, []ResolvedItem, error) {
	if len(items) == 0 {
		return decimal.Zero, nil, domain.NewValidationError([]domain.FieldError{
			{Field: "items", Message: "debe incluir al menos un item"},
		})
	}

	results := make([]itemResult, len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item dto.OrderItemInput) {
			defer wg.Done()
			results[i] = a.resolveItem(ctx, companyID, i, item)
		}(i, item)
	}
	wg.Wait()

	var fieldErrs []domain.FieldError
	resolved := make([]ResolvedItem, 0, len(items))
	total := decimal.Zero
	for i, r := range results {
		if r.err != nil {
			return decimal.Zero, nil, r.err
		}
		if len(r.fieldErrs) > 0 {
			fieldErrs = append(fieldErrs, r.fieldErrs...)
			continue
		}
		qty := items[i].Quantity
		total = total.Add(r.product.Price.Mul(decimal.NewFromInt(qty)))
		resolved = append(resolved, ResolvedItem{Product: r.product, Quantity: qty})
	}
	if len(fieldErrs) > 0 {
		sort.SliceStable(fieldErrs, func(i, j int) bool { return fieldErrs[i].Field < fieldErrs[j].Field })
		return decimal.Zero, nil, domain.NewValidationError(fieldErrs)
	}
	return total, resolved, nil
}

func (a *Aggregator) resolveItem(ctx context.Context, companyID string, idx int, item dto.OrderItemInput) itemResult {
	var errs []domain.FieldError
	prefix := fmt.Sprintf("items[%d]", idx)
	if item.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: prefix + ".quantity", Message: "debe ser mayor que cero"})
	}
	if item.ProductID == "" {
		errs = append(errs, domain.FieldError{Field: prefix + ".productId", Message: "es requerido"})
		return itemResult{fieldErrs: errs}
	}
	product, err := a.products.GetByIDAndCompany(ctx, item.ProductID, companyID)
	if err != nil {
		return itemResult{err: err}
	}
	if product == nil {
		errs = append(errs, domain.FieldError{Field: prefix + ".productId", Message: domain.ErrInvalidProduct.Error()})
	}
	return itemResult{product: product, fieldErrs: errs}
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
	"github.com/tu-usuario/gestor-comercial/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL.
// Para escribir cabecera + items atómicamente, construirlo sobre una tx (ver TxRunner).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de persistencia para compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = "id, value, supplier_id, company_id, created_at, updated_at"

// Create persiste la cabecera de una compra.
func (r *PurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, value, supplier_id, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		purchase.ID, purchase.Value, purchase.SupplierID, purchase.CompanyID,
		purchase.CreatedAt, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// Update reescribe valor y proveedor de la compra.
func (r *PurchaseRepo) Update(ctx context.Context, purchase *entity.Purchase) error {
	query := `
		UPDATE purchases
		SET value = $2, supplier_id = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		purchase.ID, purchase.Value, purchase.SupplierID, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	return nil
}

// Delete elimina la compra. Sus items caen por ON DELETE CASCADE.
func (r *PurchaseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}

// GetByIDAndCompany obtiene una compra acotada por empresa.
func (r *PurchaseRepo) GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1 AND company_id = $2`
	var p entity.Purchase
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(
		&p.ID, &p.Value, &p.SupplierID, &p.CompanyID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// ListByCompany lista las compras de una empresa.
func (r *PurchaseRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var out []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.Value, &p.SupplierID, &p.CompanyID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// CreateItem persiste una línea de compra.
func (r *PurchaseRepo) CreateItem(ctx context.Context, item *entity.PurchaseItem) error {
	query := `
		INSERT INTO purchase_items (id, quantity, product_id, purchase_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Quantity, item.ProductID, item.PurchaseID, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase item: %w", err)
	}
	return nil
}

// ListItems lista las líneas de una compra en orden de inserción.
func (r *PurchaseRepo) ListItems(ctx context.Context, purchaseID string) ([]*entity.PurchaseItem, error) {
	query := `
		SELECT id, quantity, product_id, purchase_id, created_at, updated_at
		FROM purchase_items WHERE purchase_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer rows.Close()

	var out []*entity.PurchaseItem
	for rows.Next() {
		var it entity.PurchaseItem
		if err := rows.Scan(&it.ID, &it.Quantity, &it.ProductID, &it.PurchaseID, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

// DeleteItems elimina todas las líneas de una compra (reemplazo completo en update).
func (r *PurchaseRepo) DeleteItems(ctx context.Context, purchaseID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM purchase_items WHERE purchase_id = $1`, purchaseID)
	if err != nil {
		return fmt.Errorf("delete purchase items: %w", err)
	}
	return nil
}

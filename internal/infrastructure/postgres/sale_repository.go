package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
	"github.com/tu-usuario/gestor-comercial/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// Para escribir cabecera + items atómicamente, construirlo sobre una tx (ver TxRunner).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = "id, value, discount, percentage, online, disclosure, customer_id, company_id, created_at, updated_at"

// Create persiste la cabecera de una venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, value, discount, percentage, online, disclosure, customer_id, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.Value, sale.Discount, sale.Percentage, sale.Online, sale.Disclosure,
		sale.CustomerID, sale.CompanyID, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// Update reescribe los campos mutables de la venta.
func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	query := `
		UPDATE sales
		SET value = $2, discount = $3, percentage = $4, online = $5, disclosure = $6,
		    customer_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.Value, sale.Discount, sale.Percentage, sale.Online, sale.Disclosure,
		sale.CustomerID, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete elimina la venta. Sus items caen por ON DELETE CASCADE.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// GetByIDAndCompany obtiene una venta acotada por empresa.
func (r *SaleRepo) GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1 AND company_id = $2`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(
		&s.ID, &s.Value, &s.Discount, &s.Percentage, &s.Online, &s.Disclosure,
		&s.CustomerID, &s.CompanyID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// ListByCompany lista las ventas de una empresa.
func (r *SaleRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Value, &s.Discount, &s.Percentage, &s.Online, &s.Disclosure,
			&s.CustomerID, &s.CompanyID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// CreateItem persiste una línea de venta.
func (r *SaleRepo) CreateItem(ctx context.Context, item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, quantity, product_id, sale_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Quantity, item.ProductID, item.SaleID, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// ListItems lista las líneas de una venta en orden de inserción.
func (r *SaleRepo) ListItems(ctx context.Context, saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, quantity, product_id, sale_id, created_at, updated_at
		FROM sale_items WHERE sale_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	var out []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.Quantity, &it.ProductID, &it.SaleID, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

// DeleteItems elimina todas las líneas de una venta (reemplazo completo en update).
func (r *SaleRepo) DeleteItems(ctx context.Context, saleID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	return nil
}

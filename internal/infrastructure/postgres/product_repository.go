package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
	"github.com/tu-usuario/gestor-comercial/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = "id, name, price, code, image_url, highlight, category_id, company_id, created_at, updated_at"

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, code, image_url, highlight, category_id, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Price, product.Code, product.ImageURL,
		product.Highlight, product.CategoryID, product.CompanyID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update reescribe los campos mutables del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, code = $4, image_url = $5, highlight = $6,
		    category_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Price, product.Code, product.ImageURL,
		product.Highlight, product.CategoryID, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// GetByIDAndCompany obtiene un producto acotado por empresa.
func (r *ProductRepo) GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND company_id = $2`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(
		&p.ID, &p.Name, &p.Price, &p.Code, &p.ImageURL, &p.Highlight,
		&p.CategoryID, &p.CompanyID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByCompany lista los productos de una empresa.
func (r *ProductRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Code, &p.ImageURL, &p.Highlight,
			&p.CategoryID, &p.CompanyID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
	"github.com/tu-usuario/gestor-comercial/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = "id, name, company_id, created_at, updated_at"

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.Name, category.CompanyID, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// Update reescribe los campos mutables de la categoría.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	query := `UPDATE categories SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, category.ID, category.Name, category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID. Sus productos caen por ON DELETE CASCADE.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// GetByIDAndCompany obtiene una categoría acotada por empresa.
func (r *CategoryRepo) GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 AND company_id = $2`
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(
		&c.ID, &c.Name, &c.CompanyID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ListByCompany lista las categorías de una empresa.
func (r *CategoryRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CompanyID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestor-comercial/internal/domain"
	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
	"github.com/tu-usuario/gestor-comercial/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = "id, name, cnpj, email, cellphone, address, city, state, landmark, note, company_id, created_at, updated_at"

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, cnpj, email, cellphone, address, city, state, landmark, note, company_id, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		supplier.ID, supplier.Name, supplier.CNPJ, supplier.Email, supplier.Cellphone,
		supplier.Address, supplier.City, supplier.State, supplier.Landmark, supplier.Note,
		supplier.CompanyID, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// Update reescribe los campos mutables del proveedor.
func (r *SupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, cnpj = NULLIF($3, ''), email = $4, cellphone = $5, address = $6,
		    city = $7, state = $8, landmark = $9, note = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		supplier.ID, supplier.Name, supplier.CNPJ, supplier.Email, supplier.Cellphone,
		supplier.Address, supplier.City, supplier.State, supplier.Landmark, supplier.Note,
		supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina un proveedor por ID.
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

// GetByIDAndCompany obtiene un proveedor acotado por empresa.
func (r *SupplierRepo) GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1 AND company_id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, id, companyID), "get supplier")
}

// GetByCNPJAndCompany busca otro proveedor de la empresa con el mismo CNPJ,
// excluyendo excludeID. En creación excludeID viene vacío y se manda como NULL.
func (r *SupplierRepo) GetByCNPJAndCompany(ctx context.Context, cnpj, companyID, excludeID string) (*entity.Supplier, error) {
	query := `
		SELECT ` + supplierColumns + `
		FROM suppliers
		WHERE cnpj = $1 AND company_id = $2 AND ($3::uuid IS NULL OR id <> $3)`
	return r.scanOne(r.q.QueryRow(ctx, query, cnpj, companyID, uuidOrNil(excludeID)), "get supplier by cnpj")
}

// ListByCompany lista los proveedores de una empresa.
func (r *SupplierRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SupplierRepo) scanOne(row pgx.Row, op string) (*entity.Supplier, error) {
	s, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	var cnpj *string
	err := row.Scan(&s.ID, &s.Name, &cnpj, &s.Email, &s.Cellphone, &s.Address, &s.City,
		&s.State, &s.Landmark, &s.Note, &s.CompanyID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if cnpj != nil {
		s.CNPJ = *cnpj
	}
	return &s, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
	"github.com/tu-usuario/gestor-comercial/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = "id, name, email, cellphone, company_id, created_at, updated_at"

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, cellphone, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.Email, customer.Cellphone, customer.CompanyID,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// Update reescribe los campos mutables del cliente.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, email = $3, cellphone = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.Email, customer.Cellphone, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// GetByIDAndCompany obtiene un cliente acotado por empresa.
func (r *CustomerRepo) GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 AND company_id = $2`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(
		&c.ID, &c.Name, &c.Email, &c.Cellphone, &c.CompanyID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ListByCompany lista los clientes de una empresa.
func (r *CustomerRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Cellphone, &c.CompanyID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

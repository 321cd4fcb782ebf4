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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = "id, name, trade, cnpj, owner_user_id, created_at, updated_at"

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, trade, cnpj, owner_user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.Trade, company.CNPJ, company.OwnerUserID,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// Update reescribe los campos mutables de la empresa.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies
		SET name = $2, trade = $3, cnpj = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.Trade, company.CNPJ, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// Delete elimina la empresa. Las FKs con ON DELETE CASCADE arrastran todas sus entidades.
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

// GetByIDAndOwner obtiene la empresa solo si pertenece al usuario dueño.
func (r *CompanyRepo) GetByIDAndOwner(ctx context.Context, id, ownerUserID string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1 AND owner_user_id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, id, ownerUserID), "get company")
}

// GetByCNPJAndOwner busca otra empresa del dueño con el mismo CNPJ, excluyendo
// excludeID. En creación excludeID viene vacío y se manda como NULL: no hay
// registro propio que excluir.
func (r *CompanyRepo) GetByCNPJAndOwner(ctx context.Context, cnpj, ownerUserID, excludeID string) (*entity.Company, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE cnpj = $1 AND owner_user_id = $2 AND ($3::uuid IS NULL OR id <> $3)`
	return r.scanOne(r.q.QueryRow(ctx, query, cnpj, ownerUserID, uuidOrNil(excludeID)), "get company by cnpj")
}

func (r *CompanyRepo) scanOne(row pgx.Row, op string) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(&c.ID, &c.Name, &c.Trade, &c.CNPJ, &c.OwnerUserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

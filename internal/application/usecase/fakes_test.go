package usecase_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
)

// Fakes en memoria de los puertos. Los Get* devuelven (nil, nil) sin fila,
// igual que los adaptadores reales.

type memUsers struct {
	items map[string]*entity.User
}

func newMemUsers() *memUsers { return &memUsers{items: map[string]*entity.User{}} }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.items[u.ID] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return m.items[id], nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.items {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type memCompanies struct {
	items map[string]*entity.Company
}

func newMemCompanies() *memCompanies { return &memCompanies{items: map[string]*entity.Company{}} }

func (m *memCompanies) Create(_ context.Context, c *entity.Company) error {
	m.items[c.ID] = c
	return nil
}

func (m *memCompanies) Update(_ context.Context, c *entity.Company) error {
	m.items[c.ID] = c
	return nil
}

func (m *memCompanies) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *memCompanies) GetByIDAndOwner(_ context.Context, id, ownerUserID string) (*entity.Company, error) {
	c := m.items[id]
	if c == nil || c.OwnerUserID != ownerUserID {
		return nil, nil
	}
	return c, nil
}

func (m *memCompanies) GetByCNPJAndOwner(_ context.Context, cnpj, ownerUserID, excludeID string) (*entity.Company, error) {
	for _, c := range m.items {
		if c.CNPJ == cnpj && c.OwnerUserID == ownerUserID && c.ID != excludeID {
			return c, nil
		}
	}
	return nil, nil
}

type memSuppliers struct {
	items map[string]*entity.Supplier
}

func newMemSuppliers() *memSuppliers { return &memSuppliers{items: map[string]*entity.Supplier{}} }

func (m *memSuppliers) Create(_ context.Context, s *entity.Supplier) error {
	m.items[s.ID] = s
	return nil
}

func (m *memSuppliers) Update(_ context.Context, s *entity.Supplier) error {
	m.items[s.ID] = s
	return nil
}

func (m *memSuppliers) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *memSuppliers) GetByIDAndCompany(_ context.Context, id, companyID string) (*entity.Supplier, error) {
	s := m.items[id]
	if s == nil || s.CompanyID != companyID {
		return nil, nil
	}
	return s, nil
}

func (m *memSuppliers) ListByCompany(_ context.Context, companyID string) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range m.items {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSuppliers) GetByCNPJAndCompany(_ context.Context, cnpj, companyID, excludeID string) (*entity.Supplier, error) {
	for _, s := range m.items {
		if s.CNPJ == cnpj && s.CompanyID == companyID && s.ID != excludeID {
			return s, nil
		}
	}
	return nil, nil
}

type memCustomers struct {
	items map[string]*entity.Customer
}

func newMemCustomers() *memCustomers { return &memCustomers{items: map[string]*entity.Customer{}} }

func (m *memCustomers) Create(_ context.Context, c *entity.Customer) error {
	m.items[c.ID] = c
	return nil
}

func (m *memCustomers) Update(_ context.Context, c *entity.Customer) error {
	m.items[c.ID] = c
	return nil
}

func (m *memCustomers) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *memCustomers) GetByIDAndCompany(_ context.Context, id, companyID string) (*entity.Customer, error) {
	c := m.items[id]
	if c == nil || c.CompanyID != companyID {
		return nil, nil
	}
	return c, nil
}

func (m *memCustomers) ListByCompany(_ context.Context, companyID string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range m.items {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

type memCategories struct {
	items map[string]*entity.Category
}

func newMemCategories() *memCategories { return &memCategories{items: map[string]*entity.Category{}} }

func (m *memCategories) Create(_ context.Context, c *entity.Category) error {
	m.items[c.ID] = c
	return nil
}

func (m *memCategories) Update(_ context.Context, c *entity.Category) error {
	m.items[c.ID] = c
	return nil
}

func (m *memCategories) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *memCategories) GetByIDAndCompany(_ context.Context, id, companyID string) (*entity.Category, error) {
	c := m.items[id]
	if c == nil || c.CompanyID != companyID {
		return nil, nil
	}
	return c, nil
}

func (m *memCategories) ListByCompany(_ context.Context, companyID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range m.items {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

type memProducts struct {
	items map[string]*entity.Product
}

func newMemProducts() *memProducts { return &memProducts{items: map[string]*entity.Product{}} }

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.items[p.ID] = p
	return nil
}

func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	m.items[p.ID] = p
	return nil
}

func (m *memProducts) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *memProducts) GetByIDAndCompany(_ context.Context, id, companyID string) (*entity.Product, error) {
	p := m.items[id]
	if p == nil || p.CompanyID != companyID {
		return nil, nil
	}
	return p, nil
}

func (m *memProducts) ListByCompany(_ context.Context, companyID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.items {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Datos de siembra compartidos.
const (
	ownerID        = "00000000-0000-0000-0000-000000000001"
	otherOwnerID   = "00000000-0000-0000-0000-000000000002"
	companyID      = "10000000-0000-0000-0000-000000000001"
	otherCompanyID = "10000000-0000-0000-0000-000000000002"
	categoryID     = "40000000-0000-0000-0000-000000000001"
)

func seedOwnerAndCompanies(users *memUsers, companies *memCompanies) {
	now := time.Now()
	users.items[ownerID] = &entity.User{
		ID: ownerID, Name: "Ana", Lastname: "Souza", Email: "ana@example.com",
		CreatedAt: now, UpdatedAt: now,
	}
	companies.items[companyID] = &entity.Company{
		ID: companyID, Name: "Comercial Alfa", CNPJ: "12345678000199",
		OwnerUserID: ownerID, CreatedAt: now, UpdatedAt: now,
	}
	companies.items[otherCompanyID] = &entity.Company{
		ID: otherCompanyID, Name: "Comercial Beta", CNPJ: "98765432000188",
		OwnerUserID: otherOwnerID, CreatedAt: now, UpdatedAt: now,
	}
}

func seedCategory(categories *memCategories) *entity.Category {
	now := time.Now()
	cat := &entity.Category{ID: categoryID, Name: "General", CompanyID: companyID, CreatedAt: now, UpdatedAt: now}
	categories.items[cat.ID] = cat
	return cat
}

var priceTen = decimal.RequireFromString("10.00")

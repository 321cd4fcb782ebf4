package orders_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestor-comercial/internal/application/orders"
	"github.com/tu-usuario/gestor-comercial/internal/application/scope"
	"github.com/tu-usuario/gestor-comercial/internal/application/shape"
	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
)

const (
	ownerID        = "00000000-0000-0000-0000-000000000001"
	otherOwnerID   = "00000000-0000-0000-0000-000000000002"
	companyID      = "10000000-0000-0000-0000-000000000001"
	otherCompanyID = "10000000-0000-0000-0000-000000000002"
	supplierID     = "20000000-0000-0000-0000-000000000001"
	customerID     = "30000000-0000-0000-0000-000000000001"
	categoryID     = "40000000-0000-0000-0000-000000000001"
	productAID     = "50000000-0000-0000-0000-000000000001"
	productBID     = "50000000-0000-0000-0000-000000000002"
)

// fixture arma el grafo mínimo: un dueño con su empresa, un proveedor, un
// cliente, una categoría y dos productos (10.00 y 5.00).
type fixture struct {
	users      *memUsers
	companies  *memCompanies
	categories *memCategories
	products   *memProducts
	suppliers  *memSuppliers
	customers  *memCustomers
	purchases  *memPurchases
	sales      *memSales
	tx         *fakeTx

	gate       *scope.Gate
	shaper     *shape.Shaper
	aggregator *orders.Aggregator
	purchaseUC *orders.PurchaseUseCase
	saleUC     *orders.SaleUseCase
}

func newFixture() *fixture {
	f := &fixture{
		users:      newMemUsers(),
		companies:  newMemCompanies(),
		categories: newMemCategories(),
		products:   newMemProducts(),
		suppliers:  newMemSuppliers(),
		customers:  newMemCustomers(),
		purchases:  newMemPurchases(),
		sales:      newMemSales(),
	}
	f.tx = &fakeTx{purchases: f.purchases, sales: f.sales}
	f.gate = scope.NewGate(f.companies)
	f.shaper = shape.New(f.users, f.categories, f.products)
	f.aggregator = orders.NewAggregator(f.products)
	f.purchaseUC = orders.NewPurchaseUseCase(f.tx, f.purchases, f.suppliers, f.gate, f.aggregator, f.shaper)
	f.saleUC = orders.NewSaleUseCase(f.tx, f.sales, f.customers, f.gate, f.aggregator, f.shaper)

	now := time.Now()
	f.users.items[ownerID] = &entity.User{
		ID: ownerID, Name: "Ana", Lastname: "Souza", Email: "ana@example.com",
		CreatedAt: now, UpdatedAt: now,
	}
	f.companies.items[companyID] = &entity.Company{
		ID: companyID, Name: "Comercial Alfa", CNPJ: "12345678000199",
		OwnerUserID: ownerID, CreatedAt: now, UpdatedAt: now,
	}
	f.companies.items[otherCompanyID] = &entity.Company{
		ID: otherCompanyID, Name: "Comercial Beta", CNPJ: "98765432000188",
		OwnerUserID: otherOwnerID, CreatedAt: now, UpdatedAt: now,
	}
	f.suppliers.items[supplierID] = &entity.Supplier{
		ID: supplierID, Name: "Proveedor Uno", Email: "prov@example.com",
		Cellphone: "11999990000", Address: "Rua A", City: "São Paulo", State: "SP",
		CompanyID: companyID, CreatedAt: now, UpdatedAt: now,
	}
	f.customers.items[customerID] = &entity.Customer{
		ID: customerID, Name: "Cliente Uno", Email: "cli@example.com",
		Cellphone: "11988880000", CompanyID: companyID, CreatedAt: now, UpdatedAt: now,
	}
	f.categories.items[categoryID] = &entity.Category{
		ID: categoryID, Name: "General", CompanyID: companyID, CreatedAt: now, UpdatedAt: now,
	}
	f.products.items[productAID] = &entity.Product{
		ID: productAID, Name: "Producto A", Price: decimal.RequireFromString("10.00"),
		Code: "A-001", CategoryID: categoryID, CompanyID: companyID, CreatedAt: now, UpdatedAt: now,
	}
	f.products.items[productBID] = &entity.Product{
		ID: productBID, Name: "Producto B", Price: decimal.RequireFromString("5.00"),
		Code: "B-001", CategoryID: categoryID, CompanyID: companyID, CreatedAt: now, UpdatedAt: now,
	}
	return f
}

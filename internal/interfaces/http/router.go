package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestor-comercial/internal/application/auth"
	"github.com/tu-usuario/gestor-comercial/internal/application/orders"
	"github.com/tu-usuario/gestor-comercial/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	CompanyUC  *usecase.CompanyUseCase
	SupplierUC *usecase.SupplierUseCase
	CustomerUC *usecase.CustomerUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	PurchaseUC *orders.PurchaseUseCase
	SaleUC     *orders.SaleUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Put("/:id", purchaseHandler.Update)
	purchases.Delete("/:id", purchaseHandler.Delete)

	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)
}

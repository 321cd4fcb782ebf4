package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/gestor-comercial/internal/application/auth"
	"github.com/tu-usuario/gestor-comercial/internal/application/orders"
	"github.com/tu-usuario/gestor-comercial/internal/application/scope"
	"github.com/tu-usuario/gestor-comercial/internal/application/shape"
	"github.com/tu-usuario/gestor-comercial/internal/application/usecase"
	"github.com/tu-usuario/gestor-comercial/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/gestor-comercial/internal/interfaces/http"
	"github.com/tu-usuario/gestor-comercial/pkg/config"
	"github.com/tu-usuario/gestor-comercial/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DB, "./migrations", log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	gate := scope.NewGate(companyRepo)
	shaper := shape.New(userRepo, categoryRepo, productRepo)
	aggregator := orders.NewAggregator(productRepo)

	authUC := auth.NewUseCase(userRepo, shaper, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, gate, shaper)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, gate, shaper)
	customerUC := usecase.NewCustomerUseCase(customerRepo, gate, shaper)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, gate, shaper)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, gate, shaper)
	purchaseUC := orders.NewPurchaseUseCase(txRunner, purchaseRepo, supplierRepo, gate, aggregator, shaper)
	saleUC := orders.NewSaleUseCase(txRunner, saleRepo, customerRepo, gate, aggregator, shaper)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CompanyUC:  companyUC,
		SupplierUC: supplierUC,
		CustomerUC: customerUC,
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		PurchaseUC: purchaseUC,
		SaleUC:     saleUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

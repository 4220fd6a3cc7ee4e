package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/retail-ledger/internal/application/analytics"
	"github.com/tu-usuario/retail-ledger/internal/application/inventory"
	"github.com/tu-usuario/retail-ledger/internal/application/usecase"
	"github.com/tu-usuario/retail-ledger/internal/domain/aggregation"
	"github.com/tu-usuario/retail-ledger/internal/domain/repository"
	"github.com/tu-usuario/retail-ledger/internal/infrastructure/memory"
	"github.com/tu-usuario/retail-ledger/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/retail-ledger/internal/interfaces/http"
	"github.com/tu-usuario/retail-ledger/pkg/config"
	"github.com/tu-usuario/retail-ledger/pkg/logger"
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
		Str("ledger", cfg.Ledger.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		eventRepo    repository.EventRepository
		txRepo       repository.TransactionRepository
		customerRepo repository.CustomerRepository
		productRepo  repository.ProductRepository
	)
	switch cfg.Ledger.Backend {
	case "memory":
		store := memory.New()
		eventRepo = memory.NewEventRepository(store)
		txRepo = memory.NewTransactionRepository(store)
		customerRepo = memory.NewCustomerRepository(store)
		productRepo = memory.NewProductRepository(store)
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema del ledger")
		}
		eventRepo = postgres.NewEventRepository(pool)
		txRepo = postgres.NewTransactionRepository(pool)
		customerRepo = postgres.NewCustomerRepository(pool)
		productRepo = postgres.NewProductRepository(pool)
	}

	// Par (tz, locale) de la agregación mensual: ya validado en config.Load.
	loc, _ := cfg.Agg.Location()
	tag, _ := cfg.Agg.LocaleTag()
	bucketCfg := aggregation.BucketConfig{Location: loc, Locale: tag}

	dashboardUC := analytics.NewDashboardUseCase(txRepo, customerRepo, productRepo, bucketCfg)
	inventoryUC := inventory.NewUseCase(eventRepo, productRepo)
	transactionUC := usecase.NewTransactionUseCase(txRepo, cfg.Agg.StrictNumeric)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	productUC := usecase.NewProductUseCase(productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC:   dashboardUC,
		InventoryUC:   inventoryUC,
		TransactionUC: transactionUC,
		CustomerUC:    customerUC,
		ProductUC:     productUC,
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

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/retail-ledger/internal/application/analytics"
	"github.com/tu-usuario/retail-ledger/internal/application/inventory"
	"github.com/tu-usuario/retail-ledger/internal/application/usecase"
	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC   *analytics.DashboardUseCase
	InventoryUC   *inventory.UseCase
	TransactionUC *usecase.TransactionUseCase
	CustomerUC    *usecase.CustomerUseCase
	ProductUC     *usecase.ProductUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Dashboard (estado derivado, read-only)
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)
	dashboard.Get("/sales-by-month", dashboardHandler.GetSalesByMonth)
	dashboard.Get("/recent-sales", dashboardHandler.GetRecentSales)

	// Ledger de inventario + stock derivado
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv := api.Group("/inventory")
	inv.Post("/", inventoryHandler.Create)
	inv.Get("/", inventoryHandler.List)
	inv.Delete("/:id", inventoryHandler.Delete)

	// Transacciones
	salesHandler := NewTransactionHandler(deps.TransactionUC, entity.KindSale)
	sales := api.Group("/sales")
	sales.Post("/", salesHandler.Create)
	sales.Get("/", salesHandler.List)

	purchasesHandler := NewTransactionHandler(deps.TransactionUC, entity.KindPurchase)
	purchases := api.Group("/purchases")
	purchases.Post("/", purchasesHandler.Create)
	purchases.Get("/", purchasesHandler.List)

	// Catálogo
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id/stock", inventoryHandler.GetStock)
}
